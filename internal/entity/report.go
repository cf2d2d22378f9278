package entity

import "time"

// Report rows are shaped by the aggregation pipelines that produce them;
// bson names match the pipeline projections.

// ClosedLeadRow is one lead closed inside the report window.
type ClosedLeadRow struct {
	Name       string    `json:"name" bson:"name"`
	SalesAgent string    `json:"salesAgent" bson:"salesAgent"`
	ClosedAt   time.Time `json:"closedAt" bson:"closedAt"`
}

// StatusCountRow is the lead count for one status value.
type StatusCountRow struct {
	Status LeadStatus `json:"status" bson:"status"`
	Count  int64      `json:"count" bson:"count"`
}

// AgentCountRow is the per-agent closed/pipeline split. Agents with no
// referencing leads never appear; leads whose agent reference is dangling
// are dropped by the join.
type AgentCountRow struct {
	AgentID           string `json:"agentId" bson:"agentId"`
	AgentName         string `json:"agentName" bson:"agentName"`
	ClosedLeadCount   int64  `json:"closedLeadCount" bson:"closedLeadCount"`
	PipelineLeadCount int64  `json:"pipelineLeadCount" bson:"pipelineLeadCount"`
}
