package controller

import "context"

// Push syncs the workspace into the current project.
func (c *Controller) Push(ctx context.Context) (*SyncResult, error) {
	return c.syncCurrent(ctx, c.service.PushProject)
}

// Pull syncs the current project into the workspace.
func (c *Controller) Pull(ctx context.Context) (*SyncResult, error) {
	return c.syncCurrent(ctx, c.service.PullProject)
}

func (c *Controller) syncCurrent(ctx context.Context, sync func(context.Context, string) error) (*SyncResult, error) {
	current := c.record.Current()
	if current == "" {
		return &SyncResult{NoProject: true}, nil
	}
	if err := sync(ctx, current); err != nil {
		return nil, err
	}
	return &SyncResult{Project: current}, nil
}
