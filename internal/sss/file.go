package sss

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Version is the only shard file format version this codec writes and
// accepts.
const Version = 1

// ChunkSize is the number of bytes read from the source per generate
// iteration, and the granularity of the body stream on reconstruct.
const ChunkSize = 8192

// headerOverhead budgets room for the three decimal header lines (version,
// index, prime) and their newlines ahead of the filename line, so a
// filename up to MaxFilenameLength bytes is guaranteed to fit inside the
// first ChunkSize-byte read alongside at least one byte of body.
const headerOverhead = 50

// MaxFilenameLength is the largest original-filename length GenerateFile
// will accept.
const MaxFilenameLength = ChunkSize - headerOverhead

// GenerateFile splits the file at sourcePath into n shard files written
// alongside it, named "<stem>-<k>.shard" for k = 1..n. Each shard file
// begins with a 4-line header (version, index, prime, original filename)
// followed by the §4.5-encoded body, streamed in ChunkSize-byte reads so
// the source never needs to fit in memory. progress is reported as
// cumulative bytes read from the source divided by its total size.
func GenerateFile(ctx context.Context, sourcePath string, n, t int, p int32, progress Progress) ([]string, error) {
	progress = progressOrNoop(progress)

	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return nil, newIoError("stat", sourcePath, err)
	}
	srcSize := srcInfo.Size()

	base := filepath.Base(sourcePath)
	if len(base) > MaxFilenameLength {
		return nil, ErrFilenameTooLong
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	src, err := os.Open(sourcePath)
	if err != nil {
		return nil, newIoError("open", sourcePath, err)
	}
	defer src.Close()

	dir := filepath.Dir(sourcePath)
	paths := make([]string, n)
	files := make([]*os.File, n)
	defer func() {
		for _, f := range files {
			if f != nil {
				f.Close()
			}
		}
	}()

	for k := 0; k < n; k++ {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.shard", stem, k+1))
		f, err := os.Create(path)
		if err != nil {
			return nil, newIoError("create", path, err)
		}
		paths[k] = path
		files[k] = f

		header := fmt.Sprintf("%d\n%d\n%d\n%s\n", Version, k+1, p, base)
		if _, err := f.WriteString(header); err != nil {
			return nil, newIoError("write", path, err)
		}
	}

	buf := make([]byte, ChunkSize)
	var readSoFar int64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		nRead, readErr := src.Read(buf)
		if nRead > 0 {
			shards, err := GenerateBuffer(buf[:nRead], n, t, p, NoopProgress)
			if err != nil {
				return nil, err
			}
			for k, sp := range shards {
				if _, err := files[k].Write(Encode(sp.Y)); err != nil {
					return nil, newIoError("write", paths[k], err)
				}
			}
			readSoFar += int64(nRead)
			if srcSize > 0 {
				progress.Report(float64(readSoFar) / float64(srcSize))
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, newIoError("read", sourcePath, readErr)
		}
	}
	if srcSize == 0 {
		progress.Report(1)
	}

	for k, f := range files {
		if err := f.Close(); err != nil {
			return nil, newIoError("close", paths[k], err)
		}
		files[k] = nil
	}

	return paths, nil
}

// parsedHeader is a shard file's 4-line header: version, index, prime and
// original filename.
type parsedHeader struct {
	version  int
	index    int
	prime    int32
	filename string
}

// readShardHeader reads the four newline-delimited header fields from r,
// consuming exactly the header's own bytes so the reader is left positioned
// at the first body byte. The header is required to fit within ChunkSize
// bytes, which is what bounds MaxFilenameLength.
func readShardHeader(r *bufio.Reader) (*parsedHeader, error) {
	var fields [4]string
	consumed := 0
	for i := 0; i < 4; i++ {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, ErrMalformedHeader
		}
		consumed += len(line)
		fields[i] = strings.TrimSuffix(line, "\n")
	}
	if consumed > ChunkSize {
		return nil, ErrMalformedHeader
	}

	version, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, ErrMalformedHeader
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, ErrMalformedHeader
	}
	prime, err := strconv.ParseInt(fields[2], 10, 32)
	if err != nil {
		return nil, ErrMalformedHeader
	}

	return &parsedHeader{version: version, index: index, prime: int32(prime), filename: fields[3]}, nil
}

// ShardFileInfo is the header of a shard file, readable without any of the
// other shards needed for reconstruction.
type ShardFileInfo struct {
	Version  int
	Index    int
	Prime    int32
	Filename string
}

// InspectFile reads and returns a single shard file's header without
// attempting reconstruction.
func InspectFile(path string) (*ShardFileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIoError("open", path, err)
	}
	defer f.Close()

	h, err := readShardHeader(bufio.NewReaderSize(f, ChunkSize))
	if err != nil {
		return nil, err
	}
	return &ShardFileInfo{Version: h.version, Index: h.index, Prime: h.prime, Filename: h.filename}, nil
}

// InterpolateFile reconstructs the original file from t or more shard
// files produced by GenerateFile, writing it to destDir/<filename> and
// returning that path. Header fields are cross-validated across every
// supplied shard before any body bytes are processed; see the error kinds
// in errors.go for what is checked. progress is reported as cumulative
// body bytes processed divided by the first shard file's total size.
func InterpolateFile(ctx context.Context, shardPaths []string, destDir string, progress Progress) (string, error) {
	progress = progressOrNoop(progress)

	if len(shardPaths) < 2 {
		return "", ErrInsufficientInputs
	}

	sizes := make([]int64, len(shardPaths))
	for i, p := range shardPaths {
		info, err := os.Stat(p)
		if err != nil {
			return "", newIoError("stat", p, err)
		}
		sizes[i] = info.Size()
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] != sizes[0] {
			return "", ErrMismatchedFileLengths
		}
	}

	files := make([]*os.File, len(shardPaths))
	defer func() {
		for _, f := range files {
			if f != nil {
				f.Close()
			}
		}
	}()
	for i, p := range shardPaths {
		f, err := os.Open(p)
		if err != nil {
			return "", newIoError("open", p, err)
		}
		files[i] = f
	}

	readers := make([]*bufio.Reader, len(files))
	for i, f := range files {
		readers[i] = bufio.NewReaderSize(f, ChunkSize)
	}

	headers := make([]*parsedHeader, len(files))
	chunk := make([][]byte, len(files))
	seenIndex := make(map[int]bool, len(files))

	for i, r := range readers {
		h, err := readShardHeader(r)
		if err != nil {
			return "", err
		}
		headers[i] = h

		if h.version != Version {
			return "", ErrUnsupportedVersion
		}
		if len(h.filename) > MaxFilenameLength {
			return "", ErrFilenameTooLong
		}
		if seenIndex[h.index] {
			return "", ErrDuplicateIndex
		}
		seenIndex[h.index] = true

		buf := make([]byte, ChunkSize)
		nRead, rerr := io.ReadFull(r, buf)
		if rerr != nil && rerr != io.ErrUnexpectedEOF && rerr != io.EOF {
			return "", newIoError("read", shardPaths[i], rerr)
		}
		chunk[i] = buf[:nRead]
	}

	for i := 1; i < len(headers); i++ {
		if headers[i].prime != headers[0].prime {
			return "", ErrDifferingPrimes
		}
		if headers[i].filename != headers[0].filename {
			return "", ErrDifferingFilename
		}
	}

	bodyLen := len(chunk[0])
	for i := 1; i < len(chunk); i++ {
		if len(chunk[i]) != bodyLen {
			return "", ErrMismatchedBufferSizes
		}
	}
	if bodyLen%2 != 0 {
		return "", ErrOddBuffer
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", newIoError("mkdir", destDir, err)
	}
	outPath := filepath.Join(destDir, headers[0].filename)
	outAbs, err := filepath.Abs(outPath)
	if err != nil {
		return "", newIoError("abspath", outPath, err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return "", newIoError("create", outPath, err)
	}
	defer out.Close()

	indices := make([]int, len(headers))
	for i, h := range headers {
		indices[i] = h.index
	}

	totalSize := sizes[0]
	var processed int64

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if len(chunk[0]) == 0 {
			break
		}

		points := make([]ShardPoints, len(chunk))
		for i := range chunk {
			y, err := Decode(chunk[i])
			if err != nil {
				return "", err
			}
			points[i] = ShardPoints{Index: indices[i], Y: y}
		}
		reconstructed, err := InterpolateBuffer(points, headers[0].prime, NoopProgress)
		if err != nil {
			return "", err
		}
		if _, err := out.Write(reconstructed); err != nil {
			return "", newIoError("write", outPath, err)
		}

		processed += int64(len(chunk[0]))
		if totalSize > 0 {
			progress.Report(float64(processed) / float64(totalSize))
		}

		next := make([][]byte, len(readers))
		done := false
		for i, r := range readers {
			buf := make([]byte, ChunkSize)
			nRead, rerr := io.ReadFull(r, buf)
			if rerr != nil && rerr != io.ErrUnexpectedEOF && rerr != io.EOF {
				return "", newIoError("read", shardPaths[i], rerr)
			}
			if nRead == 0 {
				done = true
			}
			next[i] = buf[:nRead]
		}
		if done {
			break
		}
		cl := len(next[0])
		for i := 1; i < len(next); i++ {
			if len(next[i]) != cl {
				return "", ErrMismatchedBufferSizes
			}
		}
		if cl%2 != 0 {
			return "", ErrOddBuffer
		}
		chunk = next
	}
	progress.Report(1)

	return outAbs, nil
}
