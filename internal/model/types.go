// Package model defines the statistics configuration payloads.
package model

// Stat modes understood by the keyword statistics backend.
const (
	ColumnMode = "列统计"
	RowMode    = "行统计"
)

// Color labels understood by the keyword statistics backend.
const (
	ColorNone   = "none"
	ColorRed    = "红色"
	ColorGreen  = "绿色"
	ColorBlue   = "蓝色"
	ColorYellow = "黄色"
)

// KeyWordStatConfig parameterizes one keyword statistics run.
type KeyWordStatConfig struct {
	KwInputDir    string `yaml:"KwInputDir"`
	KwOutputDir   string `yaml:"KwOutputDir"`
	StatMode      string `yaml:"StatMode"`
	TargetNumber  int    `yaml:"TargetNumber"`
	ForwardNumber int    `yaml:"ForwardNumber"`
	SelectedColor string `yaml:"SelectedColor"`
}

// WordFreqStatConfig parameterizes one word-frequency statistics run.
type WordFreqStatConfig struct {
	WfInputDir     string `yaml:"WfInputDir"`
	IntervalNumber int    `yaml:"IntervalNumber"`
	SplitChar      string `yaml:"SplitChar"`
}

// AppSetting holds both payloads. Its JSON form is the flat union of their keys.
type AppSetting struct {
	KeyWordStatConfig  `yaml:",inline"`
	WordFreqStatConfig `yaml:",inline"`
}

// DefaultAppSetting returns the built-in settings used before anything is saved.
func DefaultAppSetting() AppSetting {
	return AppSetting{
		KeyWordStatConfig: KeyWordStatConfig{
			StatMode:      RowMode,
			TargetNumber:  8,
			ForwardNumber: 5,
			SelectedColor: ColorGreen,
		},
		WordFreqStatConfig: WordFreqStatConfig{
			IntervalNumber: 5,
		},
	}
}

// KnownStatMode reports whether mode is one the backend recognizes.
func KnownStatMode(mode string) bool {
	return mode == ColumnMode || mode == RowMode
}

// KnownColor reports whether color is one the backend recognizes.
func KnownColor(color string) bool {
	switch color {
	case ColorNone, ColorRed, ColorGreen, ColorBlue, ColorYellow:
		return true
	default:
		return false
	}
}
