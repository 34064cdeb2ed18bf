package neptune

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

func init() {
	// windows are classified against the k-mer table as-is, no need to
	// validate reference alphabets up front
	seq.ValidateSeq = false
}

// ReadReferences loads every record of the passed FASTA files, plain or
// gzipped, into references. Sequences are uppercased so window lookups
// match the normalized k-mer table
func ReadReferences(paths []string) ([]Reference, error) {
	var refs []Reference

	for _, path := range paths {
		reader, err := fastx.NewDefaultReader(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open the reference file %s", path)
		}

		for {
			record, err := reader.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, errors.Wrapf(err, "failed to parse the reference file %s", path)
			}

			// the reader reuses its record, copy what is kept
			refs = append(refs, Reference{
				ID:  string(record.ID),
				Seq: strings.ToUpper(string(record.Seq.Seq)),
			})
		}
	}

	if len(refs) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "no sequences in the reference files")
	}

	return refs, nil
}

// KmerSizeFromFile infers k from the first k-mer of the table at path
func KmerSizeFromFile(path string) (int, error) {
	in, err := openInput(path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	k, err := ReadKmerSize(in)
	return k, errors.Wrapf(err, "failed to infer k from %s", path)
}

// MembershipFromFile builds the inclusion and exclusion membership sets
// from the k-mer count table at path
func MembershipFromFile(path string, inclusionHits, exclusionHits int) (Membership, error) {
	in, err := openInput(path)
	if err != nil {
		return Membership{}, err
	}
	defer in.Close()

	mem, err := BuildMembership(in, inclusionHits, exclusionHits)
	return mem, errors.Wrapf(err, "failed to build the k-mer sets from %s", path)
}

// openInput opens a file for reading, decompressing it when it carries
// a .gz suffix
func openInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, errors.Wrapf(err, "failed to read %s as gzip", path)
		}
		return &gzipReadCloser{gz: gz, file: file}, nil
	}

	return file, nil
}

// gzipReadCloser closes the gzip stream and the file underneath it
type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (r *gzipReadCloser) Read(p []byte) (int, error) {
	return r.gz.Read(p)
}

func (r *gzipReadCloser) Close() error {
	if err := r.gz.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
