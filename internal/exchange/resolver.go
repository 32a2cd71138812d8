package exchange

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/muleops/exchange-cli/util/common/errors"
)

// GetAsset fetches raw metadata for assetPath, which takes the form
// "groupId", "groupId/assetId" or "groupId/assetId/version". A non-2xx
// registry status is an expected-absence case: it emits one warning with
// the manual lookup URL and returns (nil, nil). Network and decode
// failures propagate.
func (c *Client) GetAsset(ctx context.Context, token, assetPath string) (*AssetPayload, error) {
	reqURL := c.BaseURL + "/assets/" + assetPath

	var payload AssetPayload
	if err := c.authorized(token).Get(ctx, reqURL, &payload); err != nil {
		var statusErr *errors.StatusError
		if stderrors.As(err, &statusErr) {
			c.sink.Warn(
				fmt.Sprintf("could not fetch metadata for asset %s (status %d)", assetPath, statusErr.StatusCode),
				fmt.Sprintf("look up the asset manually at %s/%s", c.WebURL, assetPath),
			)
			return nil, nil
		}
		return nil, err
	}
	return &payload, nil
}

// SearchExchange runs a free-text search against the registry and maps
// every hit into an AssetDescriptor, preserving registry response order.
// All failures, including non-2xx statuses, propagate to the caller.
func (c *Client) SearchExchange(ctx context.Context, token, search string) ([]*AssetDescriptor, error) {
	reqURL := c.BaseURL + "/assets?search=" + url.QueryEscape(search)

	var payloads []AssetPayload
	if err := c.authorized(token).Get(ctx, reqURL, &payloads); err != nil {
		return nil, fmt.Errorf("search %q: %w", search, err)
	}

	descriptors := make([]*AssetDescriptor, 0, len(payloads))
	for i := range payloads {
		descriptors = append(descriptors, payloads[i].Descriptor())
	}
	return descriptors, nil
}

// GetVersionByDeployment resolves the version of asset that is deployed
// to an environment matching pattern. Instances are scanned in response
// order; the first instance with a non-empty environment name matching
// the pattern wins. With no matching instance the asset's own top-level
// version is returned. Absent metadata yields ok == false without error.
func (c *Client) GetVersionByDeployment(ctx context.Context, token string, asset *AssetDescriptor, pattern *regexp.Regexp) (version string, ok bool, err error) {
	payload, err := c.GetAsset(ctx, token, asset.Path())
	if err != nil || payload == nil {
		return "", false, err
	}

	for _, inst := range payload.Instances {
		if inst.EnvironmentName != "" && pattern.MatchString(inst.EnvironmentName) {
			return inst.Version, true, nil
		}
	}
	return payload.Version, true, nil
}

// GetSpecificAPI resolves one fully qualified asset version into a
// descriptor. An empty version short-circuits to (nil, nil) without any
// request; a registry miss also yields (nil, nil).
func (c *Client) GetSpecificAPI(ctx context.Context, token, groupID, assetID, version string) (*AssetDescriptor, error) {
	if version == "" {
		return nil, nil
	}

	payload, err := c.GetAsset(ctx, token, fmt.Sprintf("%s/%s/%s", groupID, assetID, version))
	if err != nil || payload == nil {
		return nil, err
	}
	return payload.Descriptor(), nil
}
