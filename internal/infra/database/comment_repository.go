package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crmkit/salespipe/internal/entity"
)

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

func (r *CommentRepository) Insert(ctx context.Context, comment *entity.Comment) error {
	stored := *comment
	stored.Author = nil
	_, err := r.coll.InsertOne(ctx, &stored)
	return err
}

// FindByLead returns every comment on the lead with its author expanded.
// A dangling author reference leaves the details absent.
func (r *CommentRepository) FindByLead(ctx context.Context, leadID string) ([]entity.Comment, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "lead", Value: leadID}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: agentsCollection},
			{Key: "localField", Value: "author"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "authorDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$authorDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	comments := []entity.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
