// Command noviq-version prints the -ldflags that stamp build metadata into
// the noviq binary:
//
//	go build -ldflags "$(go run ./cmd/noviq-version -snapshot)" .
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"

	"go.creack.net/noviq/version"
)

const pkgPath = "go.creack.net/noviq/version"

type buildOptions struct {
	repo     string
	snapshot bool
	release  bool
	now      time.Time
}

// headHash returns the short hash of HEAD for the repository containing dir,
// or "" when dir is not inside a repository.
func headHash(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", fmt.Errorf("open repository %q: %w", dir, err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return version.Short(head.Hash().String()), nil
}

func ldflags(opts buildOptions) (string, error) {
	hash, err := headHash(opts.repo)
	if err != nil {
		return "", err
	}

	flags := []string{
		"-X " + pkgPath + ".BuildDate=" + opts.now.Format("060102"),
	}
	if hash != "" {
		flags = append(flags, "-X "+pkgPath+".GitHash="+hash)
	}
	if opts.snapshot {
		flags = append(flags, "-X "+pkgPath+".Snapshot=1")
	}
	if opts.release {
		flags = append(flags, "-X "+pkgPath+".Release=1")
	}
	return strings.Join(flags, " "), nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("noviq-version: ")

	opts := buildOptions{now: time.Now()}
	flag.StringVar(&opts.repo, "repo", ".", "path inside the git repository")
	flag.BoolVar(&opts.snapshot, "snapshot", os.Getenv("SNAPSHOT") != "", "stamp a snapshot build")
	flag.BoolVar(&opts.release, "release", false, "stamp a release build")
	flag.Parse()

	out, err := ldflags(opts)
	if err != nil {
		log.Fatalf("Fail: %s.", err)
	}
	fmt.Println(out)
}
