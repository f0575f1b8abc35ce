// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, using
// the [Duration] wrapper so intervals can be written as "30s" or "1m".
type StructuredJSONConfig struct {
	App struct {
		Version         string `json:"version"`
		DownloadsDir    string `json:"downloads_dir"`
		CachePassphrase string `json:"cache_passphrase"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIAddress     string   `json:"api_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Server struct {
		HTTPAddress string   `json:"http_address"`
		SignKey     string   `json:"sign_key"`
		TokenTTL    Duration `json:"token_ttl"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:         jsonCfg.App.Version,
			DownloadsDir:    jsonCfg.App.DownloadsDir,
			CachePassphrase: jsonCfg.App.CachePassphrase,
		},
		Adapter: Adapter{
			APIAddress:     jsonCfg.Adapter.APIAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
			SignKey:     jsonCfg.Server.SignKey,
			TokenTTL:    time.Duration(jsonCfg.Server.TokenTTL),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
