// Package pipeline streams a dataset directory through the grouping and
// batching stages and hands each batch to a face-service capability.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/kozaktomas/face-trainer/internal/faces"
	"github.com/kozaktomas/face-trainer/internal/stream"
)

// Options controls one pipeline run.
type Options struct {
	// DatasetPath is the root folder; each subfolder name is a subject.
	DatasetPath string

	// MaxRequestSize is the byte budget per batch. A batch is flushed
	// before a file that would push the running total above it; a single
	// file larger than the budget still forms its own batch.
	MaxRequestSize int64

	// OverrideName, when set, is used as the subject for every group
	// instead of the folder name.
	OverrideName string
}

// BatchFunc sends one batch of image files for the given subject.
type BatchFunc func(ctx context.Context, name string, files []string) error

// ProcessFiles walks the dataset, groups entries by directory and sends
// size-bounded batches through sendBatch, strictly in order. Groups without
// any image file are skipped. Progress events are emitted on events; the
// length added per group always equals the number of image files the
// batches will carry.
func ProcessFiles(ctx context.Context, opts Options, events chan<- faces.Report, sendBatch BatchFunc) error {
	events <- faces.Message{Text: "start processing directory: " + opts.DatasetPath}

	for group := range stream.Groups(stream.Walk(opts.DatasetPath), stream.DirBoundary) {
		imageCount := 0
		for _, entry := range group {
			if entry.Err == nil && !entry.IsDir && stream.IsImage(entry.Path) {
				imageCount++
			}
		}
		if imageCount == 0 {
			continue
		}

		name := opts.OverrideName
		if name == "" {
			var err error
			name, err = stream.DirectoryName(group)
			if err != nil {
				return err
			}
		}

		events <- faces.IncreaseLength{N: imageCount}
		events <- faces.Message{Text: "processing directory: " + name}

		var batch []string
		var totalSize int64

		for _, entry := range group {
			if entry.Err != nil {
				return fmt.Errorf("cannot read %s: %w", entry.Path, entry.Err)
			}
			if entry.IsDir {
				events <- faces.Message{Text: stream.Stem(entry.Path)}
				continue
			}
			if !stream.IsImage(entry.Path) {
				continue
			}

			info, err := os.Stat(entry.Path)
			if err != nil {
				return fmt.Errorf("cannot stat %s: %w", entry.Path, err)
			}

			if totalSize+info.Size() > opts.MaxRequestSize && len(batch) > 0 {
				if err := sendBatch(ctx, name, batch); err != nil {
					return err
				}
				batch = nil
				totalSize = 0
			}

			totalSize += info.Size()
			batch = append(batch, entry.Path)
		}

		if len(batch) > 0 {
			if err := sendBatch(ctx, name, batch); err != nil {
				return err
			}
		}
	}

	return nil
}
