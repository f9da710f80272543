// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every field has a working default, so the service starts without a config
// file: upstream feed URLs point at the local feed gateway, the table shows
// 20 vehicles per page and licence plates collate with German rules.
//
// The publishDelayMS knob delays publishing fetched vehicles, which is only
// useful for exercising the loading state of a frontend. It defaults to 0.
package config
