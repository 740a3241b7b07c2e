package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conradsun/staffd/pkg/client"
	"github.com/conradsun/staffd/pkg/wire"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "staffctl [host:port]",
	Short: "staffctl is the terminal client for staffd",
	Long: `staffctl dials a running staffd, then loops: read one line from the
terminal, send it, print the single reply, repeat. The connection carries
no state between requests.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClient,
}

func runClient(cmd *cobra.Command, args []string) error {
	addr := fmt.Sprintf("127.0.0.1:%d", wire.DefaultPort)
	if len(args) == 1 {
		addr = args[0]
	}

	c, err := client.Dial(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	fmt.Printf("connected to %s\n", addr)
	return c.Run(os.Stdout)
}
