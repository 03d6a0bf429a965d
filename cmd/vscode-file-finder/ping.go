package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"

	"github.com/sarmad-abualkaz/vscode-helper/internal"
)

var (
	pingAddr    string
	pingRetries int
	pingTimeout time.Duration
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that a running server answers its health endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = pingRetries
		retryClient.RetryWaitMin = 500 * time.Millisecond
		retryClient.RetryWaitMax = 5 * time.Second
		retryClient.Logger = nil

		client := retryClient.StandardClient()
		client.Timeout = pingTimeout
		client.Transport = &internal.UserAgentTransport{
			Base:      client.Transport,
			UserAgent: "vscode-file-finder/" + version,
		}

		url := fmt.Sprintf("http://%s/health", pingAddr)
		req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("pinging %s: %w", url, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response from %s: %w", url, err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(body)))
		return nil
	},
}

func init() {
	pingCmd.Flags().StringVar(&pingAddr, "addr", "127.0.0.1:8080", "Address of the server to ping (host:port)")
	pingCmd.Flags().IntVar(&pingRetries, "retries", 3, "Maximum number of retries")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(pingCmd)
}
