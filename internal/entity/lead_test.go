package entity

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusValid(t *testing.T) {
	for _, s := range []LeadStatus{StatusNew, StatusContacted, StatusQualified, StatusProposalSent, StatusClosed} {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, LeadStatus("Stalled").Valid())
	assert.False(t, LeadStatus("").Valid())
}

func TestLeadPriorityValid(t *testing.T) {
	assert.True(t, PriorityHigh.Valid())
	assert.True(t, LeadPriority("").Valid()) // optional
	assert.False(t, LeadPriority("Urgent").Valid())
}

func TestPriorityRankOrdering(t *testing.T) {
	priorities := []LeadPriority{"", PriorityLow, PriorityHigh, "Whatever", PriorityMedium}
	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].Rank() < priorities[j].Rank()
	})

	assert.Equal(t, []LeadPriority{PriorityHigh, PriorityMedium, PriorityLow, "", "Whatever"}, priorities)
}

func TestCloseAndReopen(t *testing.T) {
	lead := &Lead{Status: StatusQualified}
	at := time.Now().UTC()

	lead.Close(at)
	assert.Equal(t, StatusClosed, lead.Status)
	assert.Equal(t, at, *lead.ClosedAt)

	lead.Reopen(StatusContacted)
	assert.Equal(t, StatusContacted, lead.Status)
	assert.Nil(t, lead.ClosedAt)
}
