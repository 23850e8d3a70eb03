package compreface

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/kozaktomas/face-trainer/internal/faces"
)

// SendToTrain uploads each file individually as an example of subject name.
// Per-file failures land in the returned result: a transport error counts
// as missed, a rejection by the service counts as failure. One Increase
// event is emitted per file attempted, success or not.
func (c *Client) SendToTrain(ctx context.Context, name string, files []string, events chan<- faces.Report) (faces.Result, error) {
	if len(files) == 0 {
		return faces.Result{}, errors.New("empty batch")
	}

	endpoint := "faces?subject=" + url.QueryEscape(name)
	result := faces.WithContext(filepath.Dir(files[0]))
	result.Total = len(files)

	c.logger.Debug("training directory", "subject", name, "files", len(files))
	for _, filePath := range files {
		c.logger.Debug("sending file", "file", filePath)

		resp, err := c.uploadFile(ctx, endpoint, filePath)
		events <- faces.Increase{N: 1}
		if err != nil {
			c.logger.Error("failed to train file", "file", filePath, "subject", name, "err", err)
			result.Missed++
			result.MissedFaces = append(result.MissedFaces, filePath)
			continue
		}

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			result.Success++
		default:
			c.logger.Error("service rejected file, continuing with the rest",
				"file", filePath, "subject", name,
				"status", resp.StatusCode, "body", readErrorBody(resp.Body))
			result.Failure++
			result.FailureFaces = append(result.FailureFaces, faces.TrainFailure{Path: filePath})
		}
		resp.Body.Close()
	}

	return result, nil
}
