package exchange

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/muleops/exchange-cli/util/common/errors"
	"github.com/muleops/exchange-cli/util/common/fileutil"
)

// DefaultDownloadDir is where archives land when no destination is given.
const DefaultDownloadDir = "download"

// FetchExchangeFile downloads the asset's fat-raml archive into destDir
// as <assetId>.zip, overwriting any existing file. A descriptor without a
// registry id is skipped with one warning and no network traffic; that is
// not a failure. The archive link is fetched without credentials and the
// body is treated as opaque bytes.
func (c *Client) FetchExchangeFile(ctx context.Context, asset *AssetDescriptor, destDir string) error {
	if destDir == "" {
		destDir = DefaultDownloadDir
	}

	if asset.ID == "" {
		c.sink.Warn(
			fmt.Sprintf("asset %s/%s is not resolvable through the registry, skipping download", asset.GroupID, asset.AssetID),
			fmt.Sprintf("download it manually from %s/%s/%s/", c.WebURL, asset.GroupID, asset.AssetID),
		)
		return nil
	}

	if asset.FatRAML == nil || asset.FatRAML.ExternalLink == "" {
		return errors.NewValidationError("asset",
			fmt.Sprintf("asset %s carries no %s archive", asset.Path(), FatRAMLClassifier))
	}

	if err := fileutil.EnsureDir(destDir); err != nil {
		return err
	}

	resp, err := c.download.GetStream(ctx, asset.FatRAML.ExternalLink)
	if err != nil {
		return fmt.Errorf("download archive for %s: %w", asset.Path(), err)
	}
	defer resp.Body.Close()

	target := filepath.Join(destDir, asset.AssetID+".zip")

	body := io.Reader(resp.Body)
	if c.progress != nil {
		reader, done := c.progress(resp.ContentLength, resp.Body, asset.AssetID+".zip")
		defer done()
		body = reader
	}

	written, err := fileutil.WriteStream(target, body)
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("asset_id", asset.AssetID).
		Str("target", target).
		Int64("bytes", written).
		Msg("archive downloaded")
	return nil
}

// FetchExchangeFiles downloads every asset concurrently into destDir and
// returns that directory once all transfers settle. The first failing
// download aborts the batch and its error propagates; archives already
// written by other downloads are left in place. Target files are keyed by
// assetId so concurrent writes never collide.
func (c *Client) FetchExchangeFiles(ctx context.Context, assets []*AssetDescriptor, destDir string) (string, error) {
	if destDir == "" {
		destDir = DefaultDownloadDir
	}

	logger := c.logger.With().
		Str("batch_id", uuid.New().String()).
		Int("assets", len(assets)).
		Str("dest", destDir).
		Logger()
	logger.Debug().Msg("starting download batch")

	g, ctx := errgroup.WithContext(ctx)
	for _, asset := range assets {
		asset := asset
		g.Go(func() error {
			return c.FetchExchangeFile(ctx, asset, destDir)
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	logger.Debug().Msg("download batch complete")
	return destDir, nil
}
