package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome! Let's configure your studio site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Studio name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = strings.TrimSpace(name)

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Submission store.
	backendPrompt := promptui.Select{
		Label: "Where should form submissions be stored?",
		Items: []string{
			"sqlite:   local file in the data directory",
			"dynamodb: hosted AWS DynamoDB table",
		},
	}
	backendIdx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("store selection: %w", err)
	}
	if backendIdx == 1 {
		cfg.Store.Backend = BackendDynamoDB
		tablePrompt := promptui.Prompt{
			Label:   "DynamoDB table",
			Default: cfg.Store.DynamoTable,
		}
		if cfg.Store.DynamoTable, err = tablePrompt.Run(); err != nil {
			return nil, fmt.Errorf("dynamo table: %w", err)
		}
		regionPrompt := promptui.Prompt{
			Label:   "AWS region",
			Default: cfg.Store.Region,
		}
		if cfg.Store.Region, err = regionPrompt.Run(); err != nil {
			return nil, fmt.Errorf("region: %w", err)
		}
	}

	// 4. Alerts.
	notifyPrompt := promptui.Prompt{
		Label:   "Email address for new-submission alerts (blank to disable)",
		Default: "",
	}
	notifyTo, err := notifyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("notify address: %w", err)
	}
	if notifyTo = strings.TrimSpace(notifyTo); notifyTo != "" {
		cfg.Mail.NotifyTo = notifyTo
		fmt.Println("\nNote: set STUDIO_MAIL__HOST, STUDIO_MAIL__USERNAME, STUDIO_MAIL__PASSWORD and STUDIO_MAIL__FROM_EMAIL in .env to enable alerts.")
	}

	// 5. Admin passcode.
	passPrompt := promptui.Prompt{
		Label: "Admin console passcode (blank leaves it open)",
		Mask:  '*',
	}
	if cfg.Admin.Passcode, err = passPrompt.Run(); err != nil {
		return nil, fmt.Errorf("admin passcode: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// SplitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func SplitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
