package controller

import (
	"context"
	"fmt"
	"path"

	"go.uber.org/zap"
)

// Assign makes name the current project. Anything already assigned, name
// included, is unassigned first.
func (c *Controller) Assign(name string) (*AssignResult, error) {
	ok, err := c.service.IsProject(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProject, name)
	}

	result := &AssignResult{Current: name}
	if unassigned := c.Unassign(); !unassigned.NoOp {
		result.Previous = unassigned.Cleared
	}

	c.record.SetCurrent(name)
	c.logger.Info("assigned project", zap.String("project", name))
	return result, nil
}

// Unassign clears the current project.
func (c *Controller) Unassign() *UnassignResult {
	current := c.record.Current()
	if current == "" {
		return &UnassignResult{NoOp: true}
	}

	c.record.SetCurrent("")
	c.logger.Info("unassigned project", zap.String("project", current))
	return &UnassignResult{Cleared: current}
}

// Create adds a project to the library and assigns it.
func (c *Controller) Create(name string) (*CreateResult, error) {
	if err := c.service.CreateProject(name); err != nil {
		return nil, err
	}

	assign, err := c.Assign(name)
	if err != nil {
		return nil, err
	}
	return &CreateResult{Project: name, Assign: assign}, nil
}

// Copy duplicates a project. Unless req.Long is set, a destination is named
// relative to the source's parent, so copying "a/b" to "c" yields "a/c".
func (c *Controller) Copy(ctx context.Context, req CopyRequest) (*CopyResult, error) {
	dst := req.Destination
	if dst != "" && !req.Long {
		dst = path.Join(path.Dir(req.Source), dst)
	}
	return c.copyFull(ctx, req.Source, dst)
}

func (c *Controller) copyFull(ctx context.Context, src, dst string) (*CopyResult, error) {
	resolved, err := c.service.CopyProject(ctx, src, dst)
	if err != nil {
		return nil, err
	}

	result := &CopyResult{Source: src}
	if resolved == "" {
		return result, nil
	}
	result.Destination = resolved
	result.Copied = true
	return result, nil
}

// Load assigns name and pulls it into the workspace. When a different project
// is assigned the operator must confirm replacing it.
func (c *Controller) Load(ctx context.Context, name string) (*LoadResult, error) {
	result := &LoadResult{Project: name}

	for {
		current := c.record.Current()
		if current == "" || current == name {
			assign, err := c.Assign(name)
			if err != nil {
				return nil, err
			}
			if err := c.service.PullProject(ctx, name); err != nil {
				return nil, err
			}
			result.Assign = assign
			return result, nil
		}

		ok, err := c.confirmer.Confirm(fmt.Sprintf("%q is assigned to current project. Overwrite?", current))
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Declined = true
			result.Blocking = current
			return result, nil
		}

		result.Overwritten = current
		c.record.SetCurrent("")
		c.logger.Info("unassigned project", zap.String("project", current), zap.String("reason", "overwrite"))
	}
}
