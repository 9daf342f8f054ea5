package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
	} `json:"app,omitempty"`

	Auth struct {
		SecretKey     string   `json:"secret_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		SQLite struct {
			Path string `json:"path"`
		} `json:"sqlite,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		CORSAllowedOrigin string   `json:"cors_allowed_origin"`
	} `json:"server,omitempty"`

	Workers struct {
		ResetTokenSweepInterval Duration `json:"reset_token_sweep_interval"`
	} `json:"workers,omitempty"`
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
			Environment: jsonCfg.App.Environment,
		},
		Auth: Auth{
			SecretKey:     jsonCfg.Auth.SecretKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SQLite: SQLite{
				Path: jsonCfg.Storage.SQLite.Path,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigin: jsonCfg.Server.CORSAllowedOrigin,
		},
		Workers: Workers{
			ResetTokenSweepInterval: time.Duration(jsonCfg.Workers.ResetTokenSweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
