package planner

// MirrorPlan is an ordered list of operations that makes Dest mirror Source.
type MirrorPlan struct {
	// Source is the absolute root being mirrored
	Source string

	// Dest is the absolute root being made identical to Source
	Dest string

	// Operations is the ordered list of operations to execute
	Operations []Operation

	// Unchanged counts files skipped because their content already matches
	Unchanged int
}

// Operation represents a single filesystem operation to execute.
type Operation struct {
	// Type is the operation type: "mkdir", "copy" or "remove"
	Type string

	// SourcePath is the absolute source path (empty for mkdir and remove)
	SourcePath string

	// DestPath is the absolute destination path
	DestPath string

	// RelPath is the slash separated path relative to the roots
	RelPath string
}

// Operation type constants
const (
	OpMkdir  = "mkdir"
	OpCopy   = "copy"
	OpRemove = "remove"
)

// NewMirrorPlan creates a new empty MirrorPlan.
func NewMirrorPlan(source, dest string) *MirrorPlan {
	return &MirrorPlan{
		Source:     source,
		Dest:       dest,
		Operations: []Operation{},
	}
}

// AddOperation adds an operation to the plan.
func (p *MirrorPlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// IsEmpty returns true if executing the plan would change nothing.
func (p *MirrorPlan) IsEmpty() bool {
	return len(p.Operations) == 0
}

// Count returns the number of operations of the given type.
func (p *MirrorPlan) Count(opType string) int {
	n := 0
	for _, op := range p.Operations {
		if op.Type == opType {
			n++
		}
	}
	return n
}
