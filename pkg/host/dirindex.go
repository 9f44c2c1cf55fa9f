package host

import (
	"io/fs"
	"path"
)

// DirIndex is a ResourceIndex over an fs.FS tree, typically a directory of
// unpacked syntax-definition packages. Discovery order is the lexical walk
// order of the tree, which is stable across runs.
type DirIndex struct {
	fsys fs.FS
}

// NewDirIndex wraps fsys as a ResourceIndex.
func NewDirIndex(fsys fs.FS) *DirIndex {
	return &DirIndex{fsys: fsys}
}

// FindResources walks the tree and returns the slash-separated paths of
// files whose base name matches pattern.
func (d *DirIndex) FindResources(pattern string) []string {
	var names []string
	fs.WalkDir(d.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return nil
		}
		if ok, _ := path.Match(pattern, path.Base(p)); ok {
			names = append(names, p)
		}
		return nil
	})
	return names
}

// LoadResource reads a resource's content as text.
func (d *DirIndex) LoadResource(name string) (string, error) {
	data, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
