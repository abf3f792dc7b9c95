package config

// Bundlefile represents the structure of the webbundle.yaml configuration file.
type Bundlefile struct {
	Src           string   `yaml:"src"`
	Dist          string   `yaml:"dist"`
	Tmp           string   `yaml:"tmp"`
	BaseURL       string   `yaml:"baseUrl"`
	Version       string   `yaml:"version"`
	Release       bool     `yaml:"release"`
	WorkspaceRoot string   `yaml:"workspaceRoot"`
	WatchDirs     []string `yaml:"watchDirs"`
}
