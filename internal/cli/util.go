package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected boolean flag, or panic if it was never registered.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// load reads filename and decodes it with decode.
// The result is dumped to stderr when --dump is set.
func load[T any](cmd *cobra.Command, filename string, decode func([]byte) (T, error)) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, err
	}
	v, err := decode(data)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("loaded %s: %v", filename, v)
	if getFlag(cmd, "dump") {
		pretty.Fprintf(cmd.ErrOrStderr(), "%# v\n", v)
	}
	return v, nil
}

// parseAssignments turns a list of "name=value" strings into a map.
func parseAssignments(list []string) (map[string]int, error) {
	env := make(map[string]int, len(list))
	for _, a := range list {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, want name=value", a)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		if _, dup := env[name]; dup {
			log.Warnf("%s assigned more than once, using %d", name, n)
		}
		env[name] = n
	}
	return env, nil
}
