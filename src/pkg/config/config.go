/*
Process wide configuration.

A JSON file (./cfg/config.json by default) holds one section per package; each
package reads its own section and fills the gaps with its defaults. Environment
variables may come from a .env file in the working directory.
*/
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

var (
	mu       sync.RWMutex
	sections = map[string]json.RawMessage{}
	loaded   string // path of the loaded config file, empty when defaults are used
)

/*
CheckIfEnvVarsPresent loads .env (if there is one) and exits when any of the
named environment variables is empty.
*/
func CheckIfEnvVarsPresent(names ...string) {
	dotenvErr := godotenv.Load()
	if dotenvErr == nil {
		tl.Log(tl.Verbose, palette.CyanDim, "Loaded environment from '%s'", ".env")
	}

	missing := MissingEnvVars(names...)
	for _, name := range missing {
		tl.Log(tl.Warning, palette.YellowBold, "%s environment variable is %s", name, "required")
	}
	if len(missing) > 0 {
		os.Exit(1)
	}
}

// MissingEnvVars returns the names whose value is empty, in the given order.
func MissingEnvVars(names ...string) (missing []string) {
	for _, name := range names {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

/*
InitializeConfig reads the JSON config at path. A missing file is not an error:
every package keeps its defaults. An unreadable or invalid file stops the program.
*/
func InitializeConfig(path string) {
	e := Load(path)
	e.QuitIf(xerr.ErrorTypeError)
}

/*
Load reads the JSON config at path into per-package sections.
*/
func Load(path string) (e *xerr.Error) {
	fileBytes, readErr := os.ReadFile(path)
	if errors.Is(readErr, os.ErrNotExist) {
		tl.Log(tl.Info, palette.Purple, "Config file '%s' is %s, keeping %s", path, "not present", "default configuration")
		reset(nil, "")
		return nil
	}
	if readErr != nil {
		e = xerr.NewError(readErr, "read config file", path)
		return e
	}

	parsed := map[string]json.RawMessage{}
	unmarshalErr := json.Unmarshal(fileBytes, &parsed)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, "unmarshal config file", path)
		return e
	}

	reset(parsed, path)
	tl.Log(tl.Info, palette.Green, "Loaded config file '%s' with '%d' sections", path, len(parsed))
	return nil
}

func reset(parsed map[string]json.RawMessage, path string) {
	mu.Lock()
	defer mu.Unlock()
	if parsed == nil {
		parsed = map[string]json.RawMessage{}
	}
	sections = parsed
	loaded = path
}

// LoadedPath returns the config file in use, or "" when running on defaults.
func LoadedPath() string {
	mu.RLock()
	defer mu.RUnlock()
	return loaded
}

/*
Section decodes the named section into target (usually a pointer to a pointer
to the package Config, so an absent section leaves it nil).

found is false when the section is not in the file.
*/
func Section(name string, target any) (found bool, e *xerr.Error) {
	mu.RLock()
	raw, exists := sections[name]
	mu.RUnlock()
	if !exists {
		return false, nil
	}

	unmarshalErr := json.Unmarshal(raw, target)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, "unmarshal config section", name)
		return true, e
	}

	return true, nil
}

/*
GetPackageName returns the name of the package calling it, e.g. "report" when
called from budget-report/src/pkg/report.
*/
func GetPackageName() string {
	programCounter, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}
	function := runtime.FuncForPC(programCounter)
	if function == nil {
		return "unknown"
	}
	return packageFromFuncName(function.Name())
}

// "budget-report/src/pkg/report.InitializeConfig" -> "report"
func packageFromFuncName(funcName string) string {
	lastSlash := strings.LastIndex(funcName, "/")
	name := funcName[lastSlash+1:]
	if dot := strings.Index(name, "."); dot >= 0 {
		name = name[:dot]
	}
	if name == "" {
		return fmt.Sprintf("unknown(%s)", funcName)
	}
	return name
}
