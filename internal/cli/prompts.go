package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tradelab/trading-support/internal/types"
)

// planAnswers collects the interactive inputs for a trade plan.
type planAnswers struct {
	Asset      string
	Direction  string
	Size       float64
	EntryPrice float64
	ExitLogic  string
	Reasoning  string
}

func promptPlan() (*planAnswers, error) {
	answers := &planAnswers{}

	asset := &survey.Input{
		Message: "Trading symbol (ex: BTCBRL):",
	}
	if err := survey.AskOne(asset, &answers.Asset, survey.WithValidator(nonEmpty("symbol"))); err != nil {
		return nil, err
	}
	answers.Asset = strings.ToUpper(strings.TrimSpace(answers.Asset))

	direction := &survey.Select{
		Message: "Direction of the trade:",
		Options: []string{types.SideBuy, types.SideSell},
	}
	if err := survey.AskOne(direction, &answers.Direction); err != nil {
		return nil, err
	}

	if err := askFloat("Position size in asset units:", &answers.Size); err != nil {
		return nil, err
	}
	if err := askFloat("Target entry price:", &answers.EntryPrice); err != nil {
		return nil, err
	}

	exitLogic := &survey.Input{
		Message: "Exit plan:",
		Help:    "How and when you intend to leave this position",
	}
	if err := survey.AskOne(exitLogic, &answers.ExitLogic, survey.WithValidator(nonEmpty("exit plan"))); err != nil {
		return nil, err
	}

	reasoning := &survey.Input{
		Message: "Narrative for the decision:",
	}
	if err := survey.AskOne(reasoning, &answers.Reasoning, survey.WithValidator(nonEmpty("reasoning"))); err != nil {
		return nil, err
	}

	return answers, nil
}

func promptExitPrice() (float64, error) {
	var price float64
	if err := askFloat("Exit price:", &price); err != nil {
		return 0, err
	}
	return price, nil
}

func confirm(message string) (bool, error) {
	var yes bool
	prompt := &survey.Confirm{
		Message: message,
	}
	if err := survey.AskOne(prompt, &yes); err != nil {
		return false, err
	}
	return yes, nil
}

func askFloat(message string, out *float64) error {
	var raw string
	prompt := &survey.Input{
		Message: message,
	}
	err := survey.AskOne(prompt, &raw, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		parsed, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if parsed <= 0 {
			return fmt.Errorf("must be greater than zero")
		}
		return nil
	}))
	if err != nil {
		return err
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return err
	}
	*out = parsed
	return nil
}

func nonEmpty(field string) survey.Validator {
	return func(val interface{}) error {
		if strings.TrimSpace(val.(string)) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
