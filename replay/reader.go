package replay

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pirots2ascii/types"
)

// Replay is a loaded replay file.
type Replay struct {
	FilePath string
	FileName string
	States   []types.GameState
}

// Counts returns the number of board states and path states.
func (r *Replay) Counts() (boards, paths int) {
	for _, s := range r.States {
		switch s.(type) {
		case *types.BoardState:
			boards++
		case *types.PathState:
			paths++
		}
	}
	return boards, paths
}

// Load parses a replay document from r and walks it.
func (w *Walker) Load(r io.Reader) ([]types.GameState, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return w.Walk(doc)
}

// LoadFile reads and walks a replay file.
func (w *Walker) LoadFile(filePath string) (*Replay, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	states, err := w.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filePath), err)
	}
	return &Replay{
		FilePath: filePath,
		FileName: filepath.Base(filePath),
		States:   states,
	}, nil
}

// ListReplays finds the .xml files in dir, newest first by modification time.
func ListReplays(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read replay dir: %w", err)
	}

	type found struct {
		path    string
		modTime int64
	}
	var files []found
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, found{filepath.Join(dir, e.Name()), info.ModTime().UnixNano()})
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].modTime != files[j].modTime {
			return files[i].modTime > files[j].modTime
		}
		return files[i].path < files[j].path
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}
