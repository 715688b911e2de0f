package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/madnessDann/portal-precios/internal/model"
)

// fileState is the on-disk layout.
type fileState struct {
	Client *model.Client `json:"client,omitempty"`
	Admin  bool          `json:"admin,omitempty"`
}

// File stores the identity as JSON on disk, the CLI's stand-in for the
// browser's local storage. Reads swallow missing or corrupt files: an
// unreadable session simply means nobody is logged in.
type File struct {
	path string
}

// NewFile returns a file-backed store at the given path.
func NewFile(path string) *File { return &File{path: path} }

// DefaultPath places the session file under the user config dir.
func DefaultPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "portal-precios", "session.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "portal-precios", "session.json")
}

func (f *File) load() fileState {
	var st fileState
	b, err := os.ReadFile(f.path)
	if err != nil {
		return st
	}
	_ = json.Unmarshal(b, &st)
	return st
}

func (f *File) save(st fileState) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o600)
}

func (f *File) Client() (*model.Client, bool) {
	st := f.load()
	if st.Client == nil {
		return nil, false
	}
	return st.Client, true
}

func (f *File) SetClient(c model.Client) error {
	st := f.load()
	st.Client = &c
	return f.save(st)
}

func (f *File) ClearClient() error {
	st := f.load()
	st.Client = nil
	return f.save(st)
}

func (f *File) AdminAuthenticated() bool { return f.load().Admin }

func (f *File) SetAdminAuthenticated(v bool) error {
	st := f.load()
	st.Admin = v
	return f.save(st)
}

func (f *File) ClearAdmin() error {
	st := f.load()
	st.Admin = false
	return f.save(st)
}
