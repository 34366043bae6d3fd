// Package version renders the noviq version string.
//
// Release builds print "nebula-X.Y.Z". Development builds append the build
// date, "nebula-X.Y.Z-pulsar.YYMMDD", and snapshot builds also append the
// commit, "nebula-X.Y.Z-pulsar.YYMMDD.<hash>". The variables below are set
// at link time, see cmd/noviq-version.
package version

import (
	"runtime/debug"
	"time"
)

const (
	Name        = "noviq"
	Description = "A small interpreted language with string interpolation."
)

var (
	Version   = "0.1.0"
	GitHash   = "" // Short commit hash.
	BuildDate = "" // YYMMDD.
	Snapshot  = "" // Non-empty for snapshot builds.
	Release   = "" // Non-empty for release builds.
)

const dateLayout = "060102"

// Info is the build metadata a version string is made of.
type Info struct {
	Version   string
	GitHash   string
	BuildDate string
	Snapshot  bool
	Release   bool
}

// Current returns the metadata of the running binary.
func Current() Info {
	info := Info{
		Version:   Version,
		GitHash:   GitHash,
		BuildDate: BuildDate,
		Snapshot:  Snapshot != "",
		Release:   Release != "",
	}
	if info.GitHash == "" {
		info.GitHash = vcsRevision()
	}
	if info.BuildDate == "" {
		info.BuildDate = time.Now().Format(dateLayout)
	}
	return info
}

// String returns the version of the running binary.
func String() string { return Current().String() }

func (i Info) String() string {
	base := "nebula-" + i.Version
	switch {
	case i.Snapshot:
		hash := i.GitHash
		if hash == "" {
			hash = "dev"
		}
		return base + "-pulsar." + i.BuildDate + "." + hash
	case i.Release:
		return base
	default:
		return base + "-pulsar." + i.BuildDate
	}
}

// vcsRevision returns the short commit stamped by the go tool, if any.
func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return Short(s.Value)
		}
	}
	return ""
}

// Short truncates a commit hash to 7 characters.
func Short(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
