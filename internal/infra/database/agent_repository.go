package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crmkit/salespipe/internal/entity"
)

type AgentRepository struct {
	coll *mongo.Collection
}

func NewAgentRepository(db *mongo.Database) *AgentRepository {
	return &AgentRepository{coll: db.Collection(agentsCollection)}
}

func (r *AgentRepository) Insert(ctx context.Context, agent *entity.SalesAgent) error {
	_, err := r.coll.InsertOne(ctx, agent)
	if mongo.IsDuplicateKeyError(err) {
		return entity.ErrDuplicateEmail
	}
	return err
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]entity.SalesAgent, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	agents := []entity.SalesAgent{}
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (r *AgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	var agent entity.SalesAgent
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&agent)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *AgentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
