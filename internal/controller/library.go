package controller

import (
	"slices"
	"sort"

	"go.uber.org/zap"
)

// List returns the projects matching pattern, sorted.
func (c *Controller) List(pattern string) (*ListResult, error) {
	names, err := c.service.ListProjects(pattern)
	if err != nil {
		return nil, err
	}

	projects := slices.Clone(names)
	sort.Strings(projects)
	if projects == nil {
		projects = []string{}
	}
	return &ListResult{Pattern: pattern, Projects: projects}, nil
}

// Delete removes projects. Explicit names win over the pattern; otherwise the
// pattern is resolved by listing and exactly that set is deleted. A deleted
// current project is unassigned.
func (c *Controller) Delete(req DeleteRequest) (*DeleteResult, error) {
	names := req.Names
	if len(names) == 0 {
		resolved, err := c.service.ListProjects(req.Pattern)
		if err != nil {
			return nil, err
		}
		names = resolved
	}

	result := &DeleteResult{Safe: req.Safe, Deleted: slices.Clone(names)}
	if len(names) == 0 {
		result.NoOp = true
		result.Deleted = []string{}
		return result, nil
	}

	if err := c.service.DeleteProjects(names, req.Safe); err != nil {
		return nil, err
	}
	c.logger.Info("deleted projects", zap.Strings("projects", names), zap.Bool("safe", req.Safe))

	if current := c.record.Current(); current != "" && slices.Contains(names, current) {
		c.Unassign()
		result.Unassigned = current
	}
	return result, nil
}

// Status reports the controller state. A current project that is no longer
// in the library is unassigned.
func (c *Controller) Status() (*StatusResult, error) {
	result := &StatusResult{MetadataPath: c.store.Path()}

	if current := c.record.Current(); current != "" {
		ok, err := c.service.IsProject(current)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.Unassign()
			result.StaleCleared = current
		}
	}

	result.Current = c.record.Current()
	result.Record = c.Record()
	return result, nil
}
