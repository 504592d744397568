package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/config"
	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/render"
)

// readInput reads path, or stdin when path is "" or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// decodeRequests accepts a single request object or an array of them.
func decodeRequests(data []byte) ([]render.Request, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.Newf(errors.CodeBadRequest, "No render requests in input.")
	}

	var reqs []render.Request
	if data[0] == '[' {
		if err := json.Unmarshal(data, &reqs); err != nil {
			return nil, errors.Newf(errors.CodeBadRequest, "Invalid request list.").Wrap(err)
		}
		return reqs, nil
	}

	var req render.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, errors.Newf(errors.CodeBadRequest, "Invalid request.").Wrap(err).
			WithSuggestion(`Pass {"tag": "div", "content": "..."} or a JSON array of such objects.`)
	}
	return []render.Request{req}, nil
}

// loadConfig loads --config, or the config file in the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
