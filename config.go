package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	InputFile     string `yaml:"input_file"`
	OutputFile    string `yaml:"output_file"`
	CSVOutputFile string `yaml:"csv_output_file"`

	DBPath      string `yaml:"db_path"`
	PreviewRows int    `yaml:"preview_rows"`

	WatchSchedule string `yaml:"watch_schedule"`

	ProjectGlossaryPath string `yaml:"project_glossary_path"`

	SlackBotToken   string `yaml:"slack_bot_token"`
	ReportChannelID string `yaml:"report_channel_id"`

	LLMSuggestProjects bool   `yaml:"llm_suggest_projects"`
	LLMModel           string `yaml:"llm_model"`
	AnthropicAPIKey    string `yaml:"anthropic_api_key"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.InputFile, "INPUT_FILE")
	envOverride(&cfg.OutputFile, "OUTPUT_FILE")
	envOverride(&cfg.CSVOutputFile, "CSV_OUTPUT_FILE")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverrideInt(&cfg.PreviewRows, "PREVIEW_ROWS")
	envOverride(&cfg.WatchSchedule, "WATCH_SCHEDULE")
	envOverride(&cfg.ProjectGlossaryPath, "PROJECT_GLOSSARY_PATH")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.ReportChannelID, "REPORT_CHANNEL_ID")
	envOverrideBool(&cfg.LLMSuggestProjects, "LLM_SUGGEST_PROJECTS")
	envOverride(&cfg.LLMModel, "LLM_MODEL")
	envOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")

	// Defaults
	if cfg.InputFile == "" {
		cfg.InputFile = "raw_notes.txt"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "daily_activities_clean.xlsx"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./daylog.db"
	}
	if cfg.PreviewRows == 0 {
		cfg.PreviewRows = 10
	}

	if cfg.PreviewRows < 0 {
		log.Fatalf("invalid preview_rows '%d': must be >= 0", cfg.PreviewRows)
	}
	if cfg.LLMSuggestProjects && cfg.AnthropicAPIKey == "" {
		log.Fatalf("anthropic_api_key is required when llm_suggest_projects is enabled")
	}
	if cfg.ReportChannelID != "" && cfg.SlackBotToken == "" {
		log.Fatalf("slack_bot_token is required when report_channel_id is set")
	}
	if cfg.ProjectGlossaryPath != "" {
		if _, err := LoadProjectGlossary(cfg.ProjectGlossaryPath); err != nil {
			log.Fatalf("invalid project_glossary_path '%s': %v", cfg.ProjectGlossaryPath, err)
		}
	}

	return cfg
}

// SlackConfigured reports whether export summaries should be posted.
func (c Config) SlackConfigured() bool {
	return c.SlackBotToken != "" && c.ReportChannelID != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func envOverrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
