package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// mustGetBool возвращает значение флага или паникует, если флаг не объявлен.
// Флаги объявляются при сборке команды, ошибка здесь означает баг.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

func mustGetIntSlice(cmd *cobra.Command, name string) []int {
	val, err := cmd.Flags().GetIntSlice(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}
