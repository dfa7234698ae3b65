package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/zeebo/meow"
	"github.com/zeebo/meow/internal/mmap"
)

const testBufferSize = 16000

func printHash(w io.Writer, d meow.Digest) {
	fmt.Fprintf(w, "    %s\n", d)
}

func hashTestBuffer(w io.Writer, impl meow.Impl, seed meow.Seed) error {
	buf := make([]byte, testBufferSize)
	for i := range buf {
		buf[i] = byte(i)
	}

	fmt.Fprintln(w, "  Hash of a test buffer:")
	printHash(w, impl.Sum(seed, buf))
	return nil
}

// hashFile hashes the named file, or standard input when name is "-".
func hashFile(w io.Writer, in io.Reader, impl meow.Impl, seed meow.Seed, name string) error {
	if name == "-" {
		h := meow.NewHasher(impl, seed)
		if _, err := io.Copy(h, in); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fmt.Fprintln(w, "  Hash of standard input:")
		printHash(w, h.Digest())
		return nil
	}

	f, err := mmap.Open(name)
	if err != nil {
		return fmt.Errorf("load %q: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	fmt.Fprintf(w, "  Hash of %q:\n", name)
	printHash(w, impl.Sum(seed, f.Bytes()))
	return nil
}

type loaded struct {
	file   *mmap.File
	digest meow.Digest
}

func compareFiles(ctx context.Context, w io.Writer, impl meow.Impl, seed meow.Seed, nameA, nameB string) error {
	var a, b loaded
	defer func() { _ = a.file.Close() }()
	defer func() { _ = b.file.Close() }()

	eg, ctx := errgroup.WithContext(ctx)
	for _, job := range []struct {
		name string
		dst  *loaded
	}{{nameA, &a}, {nameB, &b}} {
		eg.Go(func() error {
			f, err := mmap.Open(job.name)
			if err != nil {
				return fmt.Errorf("load %q: %w", job.name, err)
			}
			job.dst.file = f
			if err := ctx.Err(); err != nil {
				return err
			}
			job.dst.digest = impl.Sum(seed, f.Bytes())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	hashesMatch := meow.Equal(a.digest, b.digest)
	filesMatch := bytes.Equal(a.file.Bytes(), b.file.Bytes())

	switch {
	case hashesMatch && filesMatch:
		fmt.Fprintf(w, "Files %q and %q are the same:\n", nameA, nameB)
		printHash(w, a.digest)
	case filesMatch:
		fmt.Fprintln(w, "MEOW HASH FAILURE: Files match but hashes don't!")
		fmt.Fprintf(w, "  Hash of %q:\n", nameA)
		printHash(w, a.digest)
		fmt.Fprintf(w, "  Hash of %q:\n", nameB)
		printHash(w, b.digest)
	case hashesMatch:
		fmt.Fprintln(w, "MEOW HASH FAILURE: Hashes match but files don't!")
		fmt.Fprintf(w, "  Hash of both %q and %q:\n", nameA, nameB)
		printHash(w, a.digest)
	default:
		fmt.Fprintf(w, "Files %q and %q are different:\n", nameA, nameB)
		fmt.Fprintf(w, "  Hash of %q:\n", nameA)
		printHash(w, a.digest)
		fmt.Fprintf(w, "  Hash of %q:\n", nameB)
		printHash(w, b.digest)
	}
	return nil
}
