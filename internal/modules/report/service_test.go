package report

import (
	"context"
	"testing"

	"gearshare/internal/domain"
	"gearshare/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestService_Lifecycle(t *testing.T) {
	svc := NewService(testutil.NewStore(t), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", CreateReportRequest{ReportType: "bug", Subject: "s", Description: "d"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	eqID := int64(3)
	r, err := svc.Create(ctx, "alice", CreateReportRequest{
		ReportType: "damage", Subject: "Scratched lens", Description: "arrived scratched", EquipmentID: &eqID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportPending, r.Status)
	assert.Equal(t, domain.DefaultPriority, r.Priority)
	assert.Equal(t, "alice", r.ReporterUsername)

	high := "high"
	_, err = svc.Create(ctx, "bob", CreateReportRequest{ReportType: "bug", Subject: "s", Description: "d", Priority: &high})
	require.NoError(t, err)

	resolved := "resolved"
	blank := ""
	updated, err := svc.Update(ctx, r.ID, ReportPatch{Status: &resolved, Priority: &blank})
	require.NoError(t, err)
	assert.Equal(t, "resolved", updated.Status)
	assert.Equal(t, domain.DefaultPriority, updated.Priority)

	pending, err := svc.List(ctx, domain.ReportPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "high", pending[0].Priority)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, svc.Delete(ctx, r.ID))
	assert.ErrorIs(t, svc.Delete(ctx, r.ID), domain.ErrNotFound)
	_, err = svc.Get(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Update(ctx, r.ID, ReportPatch{Status: &resolved})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_LogsWrites(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewService(testutil.NewStore(t), zap.New(core))
	ctx := context.Background()

	r, err := svc.Create(ctx, "alice", CreateReportRequest{ReportType: "bug", Subject: "s", Description: "d"})
	require.NoError(t, err)

	filed := logs.FilterMessage("report filed").All()
	require.Len(t, filed, 1)
	fields := filed[0].ContextMap()
	assert.Equal(t, r.ID, fields["report_id"])
	assert.Equal(t, "alice", fields["reporter"])
	assert.Equal(t, domain.DefaultPriority, fields["priority"])

	require.NoError(t, svc.Delete(ctx, r.ID))
	assert.Equal(t, 1, logs.FilterMessage("report deleted").Len())

	// failed deletes are not logged as writes
	assert.Error(t, svc.Delete(ctx, r.ID))
	assert.Equal(t, 1, logs.FilterMessage("report deleted").Len())
}
