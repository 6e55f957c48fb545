package source

import (
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
)

type Kind int

const (
	Local Kind = iota
	Remote
)

func (k Kind) String() string {
	if k == Remote {
		return "remote"
	}

	return "local"
}

const defaultExt = ".pdf"

// Classify looks only at the scheme prefix; it never touches the network or the disk.
func Classify(ref string) Kind {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return Remote
	}

	return Local
}

// FileName returns everything after the last slash of the reference, verbatim.
func FileName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}

// TempName returns a per-call file name for a fetched document. Only the
// extension is taken from the URL, so two calls never share a file.
func TempName(ref string) string {
	return uuid.NewString() + extension(ref)
}

func extension(ref string) string {
	name := FileName(ref)
	if u, err := url.Parse(ref); err == nil {
		name = path.Base(u.Path)
	}

	ext := path.Ext(name)
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		return defaultExt
	}

	return ext
}
