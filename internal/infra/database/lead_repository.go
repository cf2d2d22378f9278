package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crmkit/salespipe/internal/entity"
	"github.com/crmkit/salespipe/internal/usecase"
)

type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection(leadsCollection)}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	stored := *lead
	stored.SalesAgent = nil
	_, err := r.coll.InsertOne(ctx, &stored)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) Replace(ctx context.Context, lead *entity.Lead) (bool, error) {
	stored := *lead
	stored.SalesAgent = nil
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": lead.ID}, &stored)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List runs a single pipeline: optional match, optional sort, then a left
// join expanding each lead's agent. An unmatched reference keeps the lead
// in the result with the details absent.
func (r *LeadRepository) List(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	pipeline := mongo.Pipeline{}

	match := bson.D{}
	if filter.Status != "" {
		match = append(match, bson.E{Key: "status", Value: filter.Status})
	}
	if filter.Agent != "" {
		match = append(match, bson.E{Key: "salesAgent", Value: filter.Agent})
	}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	switch filter.Sort {
	case "asc":
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}})
	case "desc":
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}})
	case "timeToClose":
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "timeToClose", Value: 1}}}})
	case "priority":
		// High, Medium, Low, then anything else.
		pipeline = append(pipeline,
			bson.D{{Key: "$addFields", Value: bson.D{{Key: "priorityRank", Value: bson.D{{Key: "$switch", Value: bson.D{
				{Key: "branches", Value: bson.A{
					bson.D{{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$priority", "High"}}}}, {Key: "then", Value: 1}},
					bson.D{{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$priority", "Medium"}}}}, {Key: "then", Value: 2}},
					bson.D{{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$priority", "Low"}}}}, {Key: "then", Value: 3}},
				}},
				{Key: "default", Value: 4},
			}}}}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "priorityRank", Value: 1}}}},
		)
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: agentsCollection},
			{Key: "localField", Value: "salesAgent"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "salesAgentDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$salesAgentDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	)
	if filter.Sort == "priority" {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.D{{Key: "priorityRank", Value: 0}}}})
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	leads := []entity.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadRepository) ClosedBetween(ctx context.Context, from, to time.Time) ([]entity.ClosedLeadRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "closedAt", Value: bson.D{
			{Key: "$gte", Value: from},
			{Key: "$lte", Value: to},
		}}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "name", Value: 1},
			{Key: "salesAgent", Value: 1},
			{Key: "closedAt", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := []entity.ClosedLeadRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LeadRepository) CountInPipeline(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": bson.M{"$ne": string(entity.StatusClosed)}})
}

func (r *LeadRepository) CountByStatus(ctx context.Context) ([]entity.StatusCountRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "status", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := []entity.StatusCountRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByAgent groups leads per agent then joins the agent record. The
// unwind here intentionally has no preserveNullAndEmptyArrays: groups whose
// agent reference does not resolve fall out of the report.
func (r *LeadRepository) CountByAgent(ctx context.Context) ([]entity.AgentCountRow, error) {
	closedCond := bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{"$status", string(entity.StatusClosed)}}}, 1, 0,
	}}}
	pipelineCond := bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$ne", Value: bson.A{"$status", string(entity.StatusClosed)}}}, 1, 0,
	}}}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$salesAgent"},
			{Key: "closedLeadCount", Value: bson.D{{Key: "$sum", Value: closedCond}}},
			{Key: "pipelineLeadCount", Value: bson.D{{Key: "$sum", Value: pipelineCond}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: agentsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "agent"},
		}}},
		bson.D{{Key: "$unwind", Value: "$agent"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "agentId", Value: "$_id"},
			{Key: "agentName", Value: "$agent.name"},
			{Key: "closedLeadCount", Value: 1},
			{Key: "pipelineLeadCount", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	rows := []entity.AgentCountRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
