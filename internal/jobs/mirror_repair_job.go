package jobs

import (
	"context"
	"log/slog"

	"shiptrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MirrorRepairJob periodically sweeps the orders' embedded parcel lists and
// re-materializes parcel records missing from the normalized table. The
// dual store's writes are independent, so a crash between them leaves
// drift; this job repairs it without waiting for the next status change to
// trip over the gap.
type MirrorRepairJob struct {
	handler commands.RepairMirrorCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMirrorRepairJob creates a new job for dual-store repair sweeps.
func NewMirrorRepairJob(handler commands.RepairMirrorCommandHandler, logger *slog.Logger) *MirrorRepairJob {
	return &MirrorRepairJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "mirror_repair_job"),
	}
}

// Start begins the repair job, sweeping once a minute.
func (j *MirrorRepairJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRepairMirrorCommand()

		repaired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Mirror repair job failed", "error", err)
			return
		}

		if repaired > 0 {
			j.logger.InfoContext(ctx, "Mirror repair job materialized missing parcel records",
				"repaired", repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mirror repair job started (running every minute)")
	return nil
}

// Stop stops the repair job.
func (j *MirrorRepairJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Mirror repair job stopped")
}
