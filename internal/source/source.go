// Package source reads log lines for ranking.
package source

import (
	"io"
	"os"
	"regexp"

	"github.com/bitfield/script"
	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
)

// Options control how File reads its input.
type Options struct {
	Match    *regexp.Regexp // keep only matching lines, nil keeps all
	Progress io.Writer      // progress bar output, nil disables the bar
}

// Lines returns the lines of r without their line terminators. If match is
// not nil, only lines matching it are returned.
func Lines(r io.Reader, match *regexp.Regexp) ([]string, error) {
	p := script.NewPipe().WithReader(r)
	if match != nil {
		p = p.MatchRegexp(match)
	}

	lines, err := p.Slice()
	if err != nil {
		return nil, errors.Wrap(err, "can't read lines")
	}
	return lines, nil
}

// Read returns the lines of r, shown on a byte counter when opts.Progress
// is set.
func Read(r io.Reader, opts Options) ([]string, error) {
	return read(r, 0, opts)
}

// File returns the lines of the file at path.
func File(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open %s", path)
	}
	defer file.Close()

	var size int64
	if opts.Progress != nil {
		fi, err := file.Stat()
		if err != nil {
			return nil, errors.Wrapf(err, "can't stat %s", path)
		}
		size = fi.Size()
	}

	return read(file, size, opts)
}

// read is Lines with an optional progress bar over size bytes. A zero size
// shows the bytes read without a total.
func read(r io.Reader, size int64, opts Options) ([]string, error) {
	if opts.Progress == nil {
		return Lines(r, opts.Match)
	}

	bar := pb.New64(size)
	bar.SetWriter(opts.Progress)
	bar.Set(pb.Bytes, true)
	bar.Start()
	defer bar.Finish()

	return Lines(bar.NewProxyReader(r), opts.Match)
}
