package tools

import "runtime"

// InstallHints returns per-platform pointers for installing a missing tool.
func InstallHints(tool string) []string {
	if tool != "yarn" {
		return nil
	}

	switch runtime.GOOS {
	case "darwin":
		return []string{
			"Install yarn via Homebrew: brew install yarn",
			"or see https://yarnpkg.com/",
		}
	case "linux":
		return []string{
			"Install yarn with your distro package manager or npm: npm install -g yarn",
			"or see https://yarnpkg.com/",
		}
	case "windows":
		return []string{
			"Install yarn via winget: winget install Yarn.Yarn",
			"or see https://yarnpkg.com/",
		}
	default:
		return []string{"See https://yarnpkg.com/ for installation instructions"}
	}
}
