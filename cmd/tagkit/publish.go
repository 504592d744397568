package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/internal/config"
	"github.com/vango-dev/tagkit/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		input  string
		bucket string
		dir    string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "publish <key>",
		Short: "Render a document and upload it",
		Long: `Render JSON requests into one document and store it under key.

The document goes to S3 when a bucket is configured, otherwise below the
publish directory.

Examples:
  tagkit publish index.html -f page.json
  tagkit publish about.html --html -f about.html --bucket my-site`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if dir != "" {
				cfg.Publish.Dir = dir
			}

			store, where, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}

			p := publish.New(store, publish.WithLogger(cfg.Logger(os.Stderr)))
			var res publish.Result
			if raw {
				res, err = p.PublishHTML(cmd.Context(), args[0], string(data))
			} else {
				reqs, derr := decodeRequests(data)
				if derr != nil {
					return derr
				}
				res, err = p.Publish(cmd.Context(), args[0], reqs)
			}
			if err != nil {
				return err
			}

			success("Published %s to %s", res.Key, where)
			info("%d bytes from %d request(s)", res.Bytes, res.Requests)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "file", "f", "", "Input file (default: stdin)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from config)")
	cmd.Flags().StringVar(&dir, "dir", "", "Output directory when no bucket is set")
	cmd.Flags().BoolVar(&raw, "html", false, "Treat input as finished HTML")

	return cmd
}

// openStore returns the configured store and a description of it.
func openStore(cmd *cobra.Command, cfg *config.Config) (publish.Store, string, error) {
	pc := cfg.Publish
	if pc.Bucket != "" {
		store, err := publish.NewS3Store(cmd.Context(), publish.S3Config{
			Bucket:       pc.Bucket,
			Prefix:       pc.Prefix,
			Region:       pc.Region,
			Endpoint:     pc.Endpoint,
			UsePathStyle: pc.PathStyle,
		})
		if err != nil {
			return nil, "", err
		}
		return store, "s3://" + pc.Bucket + "/" + pc.Prefix, nil
	}

	store, err := publish.NewDiskStore(pc.Dir)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}
