package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON
// config file. Durations accept both "6s"-style strings and nanosecond
// numbers via the [Duration] wrapper.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		LoginDelay        Duration `json:"login_delay"`
		FeedStopPINHashes []string `json:"feed_stop_pin_hashes"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Analyzer struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		Model   string   `json:"model"`
		Timeout Duration `json:"timeout"`
	} `json:"analyzer,omitempty"`

	Capture struct {
		WasteLevelThreshold int      `json:"waste_level_threshold"`
		Location            string   `json:"location"`
		AllowRerequest      bool     `json:"allow_rerequest"`
		VerifyLatency       Duration `json:"verify_latency"`
	} `json:"capture,omitempty"`

	Sentry struct {
		ScanInterval Duration `json:"scan_interval"`
		AutoStart    bool     `json:"auto_start"`
	} `json:"sentry,omitempty"`

	Feed struct {
		FrameInterval Duration `json:"frame_interval"`
		AutoStart     bool     `json:"auto_start"`
	} `json:"feed,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Console struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"console,omitempty"`
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
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			LoginDelay:        time.Duration(jsonCfg.App.LoginDelay),
			FeedStopPINHashes: jsonCfg.App.FeedStopPINHashes,
			Version:           jsonCfg.App.Version,
		},
		Analyzer: Analyzer{
			BaseURL: jsonCfg.Analyzer.BaseURL,
			APIKey:  jsonCfg.Analyzer.APIKey,
			Model:   jsonCfg.Analyzer.Model,
			Timeout: time.Duration(jsonCfg.Analyzer.Timeout),
		},
		Capture: Capture{
			WasteLevelThreshold: jsonCfg.Capture.WasteLevelThreshold,
			Location:            jsonCfg.Capture.Location,
			AllowRerequest:      jsonCfg.Capture.AllowRerequest,
			VerifyLatency:       time.Duration(jsonCfg.Capture.VerifyLatency),
		},
		Sentry: Sentry{
			ScanInterval: time.Duration(jsonCfg.Sentry.ScanInterval),
			AutoStart:    jsonCfg.Sentry.AutoStart,
		},
		Feed: Feed{
			FrameInterval: time.Duration(jsonCfg.Feed.FrameInterval),
			AutoStart:     jsonCfg.Feed.AutoStart,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Console: Console{
			ServerURL:      jsonCfg.Console.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Console.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
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
