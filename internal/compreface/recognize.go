package compreface

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/kozaktomas/face-trainer/internal/faces"
)

// recognitionResponse is the CompreFace recognize payload. Only the
// candidate subjects per detected face are relevant here.
type recognitionResponse struct {
	Result []struct {
		Subjects []faces.Subject `json:"subjects"`
	} `json:"result"`
}

// subjects flattens the candidates of all detected faces, in response order.
func (r recognitionResponse) subjects() []faces.Subject {
	var out []faces.Subject
	for _, item := range r.Result {
		out = append(out, item.Subjects...)
	}
	return out
}

// matches reports whether any detected face lists name as a candidate.
func (r recognitionResponse) matches(name string) bool {
	for _, item := range r.Result {
		for _, subject := range item.Subjects {
			if subject.Name == name {
				return true
			}
		}
	}
	return false
}

// Recognize uploads each file and checks the response for the expected
// subject. A response without a matching candidate counts as failure and
// records all returned candidates; a transport or parse error counts as
// missed. One Increase event is emitted per file attempted.
func (c *Client) Recognize(ctx context.Context, name string, files []string, events chan<- faces.Report) (faces.Result, error) {
	if len(files) == 0 {
		return faces.Result{}, errors.New("empty batch")
	}

	result := faces.WithContext(filepath.Dir(files[0]))

	c.logger.Debug("recognizing directory", "subject", name, "files", len(files))
	for _, filePath := range files {
		c.logger.Debug("sending file", "file", filePath)
		result.Total++

		resp, err := c.uploadFile(ctx, "recognize", filePath)
		events <- faces.Increase{N: 1}
		if err != nil {
			c.logger.Error("failed to recognize file", "file", filePath, "subject", name, "err", err)
			result.Missed++
			result.MissedFaces = append(result.MissedFaces, filePath)
			continue
		}

		var response recognitionResponse
		err = json.NewDecoder(resp.Body).Decode(&response)
		resp.Body.Close()
		if err != nil {
			c.logger.Error("failed to parse recognize response", "file", filePath, "subject", name, "err", err)
			result.Missed++
			result.MissedFaces = append(result.MissedFaces, filePath)
			continue
		}

		if response.matches(name) {
			result.Success++
		} else {
			result.Failure++
			result.FailureFaces = append(result.FailureFaces, faces.RecognizeFailure{
				Path:     filePath,
				Subjects: response.subjects(),
			})
		}
	}

	return result, nil
}
