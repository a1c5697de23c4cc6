package planner

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/danieljhkim/librarian/internal/fsops"
	"github.com/danieljhkim/librarian/internal/hash"
)

// BuildMirrorPlan generates a deterministic plan that makes dest an exact copy of source.
// source must be an existing directory. dest may be missing, a file, or a directory.
func BuildMirrorPlan(source, dest string, fs fsops.FS, hasher hash.Hasher) (*MirrorPlan, error) {
	srcInfo, err := fs.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source %s: %w", source, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", source)
	}

	plan := NewMirrorPlan(source, dest)
	b := &mirrorBuilder{fs: fs, hasher: hasher, plan: plan}
	if err := b.dir(source, dest, "", false); err != nil {
		return nil, err
	}
	return plan, nil
}

type mirrorBuilder struct {
	fs     fsops.FS
	hasher hash.Hasher
	plan   *MirrorPlan
}

// dir plans the mirror of one directory level, then recurses. destMissing is
// set when dst is already known to be absent, or will be by the time the plan
// runs, so nothing below it is inspected.
func (b *mirrorBuilder) dir(src, dst, rel string, destMissing bool) error {
	destIsDir := false
	if destMissing {
		b.add(OpMkdir, "", dst, rel)
	} else {
		dstInfo, err := b.stat(dst)
		if err != nil {
			return err
		}
		destIsDir = dstInfo != nil && dstInfo.IsDir()
		if dstInfo != nil && !destIsDir {
			b.add(OpRemove, "", dst, rel)
		}
		if !destIsDir {
			b.add(OpMkdir, "", dst, rel)
		}
	}

	srcEntries, err := b.fs.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	inSource := make(map[string]bool, len(srcEntries))
	for _, entry := range srcEntries {
		inSource[entry.Name()] = true
	}

	// Stale entries go first so a later copy never collides with them.
	if destIsDir {
		dstEntries, err := b.fs.ReadDir(dst)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", dst, err)
		}
		for _, entry := range dstEntries {
			if !inSource[entry.Name()] {
				b.add(OpRemove, "", filepath.Join(dst, entry.Name()), path.Join(rel, entry.Name()))
			}
		}
	}

	for _, entry := range srcEntries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		relPath := path.Join(rel, entry.Name())

		info, err := b.fs.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		if info.IsDir() {
			if err := b.dir(srcPath, dstPath, relPath, !destIsDir); err != nil {
				return err
			}
			continue
		}
		if err := b.file(srcPath, dstPath, relPath, !destIsDir); err != nil {
			return err
		}
	}

	return nil
}

func (b *mirrorBuilder) file(src, dst, rel string, destMissing bool) error {
	if destMissing {
		b.add(OpCopy, src, dst, rel)
		return nil
	}

	dstInfo, err := b.stat(dst)
	if err != nil {
		return err
	}

	switch {
	case dstInfo == nil:
		b.add(OpCopy, src, dst, rel)
	case dstInfo.IsDir():
		b.add(OpRemove, "", dst, rel)
		b.add(OpCopy, src, dst, rel)
	default:
		same, err := hash.SameContent(b.hasher, src, dst)
		if err != nil {
			return fmt.Errorf("failed to compare %s: %w", rel, err)
		}
		if same {
			b.plan.Unchanged++
			return nil
		}
		b.add(OpCopy, src, dst, rel)
	}
	return nil
}

// stat returns nil info without error when path does not exist.
func (b *mirrorBuilder) stat(p string) (os.FileInfo, error) {
	info, err := b.fs.Stat(p)
	if err != nil {
		if fsops.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", p, err)
	}
	return info, nil
}

func (b *mirrorBuilder) add(opType, src, dst, rel string) {
	b.plan.AddOperation(Operation{
		Type:       opType,
		SourcePath: src,
		DestPath:   dst,
		RelPath:    rel,
	})
}
