// Command ops is a small operator CLI for a running cookbook server:
// bulk-seed entries from a yaml file, fetch recipe summaries, and check
// name normalization.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cookbook/internal/cookbook"
)

var serverAddr string

var httpClient = &http.Client{Timeout: 10 * time.Second}

func main() {
	root := &cobra.Command{
		Use:           "ops",
		Short:         "Operate a running cookbook server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:8044", "base URL of the cookbook server")

	root.AddCommand(seedCmd(), summaryCmd(), normalizeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert entries from a yaml file, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var candidates []cookbook.Candidate
			if err := yaml.Unmarshal(data, &candidates); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			inserted := 0
			for i, c := range candidates {
				body, err := json.Marshal(c)
				if err != nil {
					return err
				}
				res, err := httpClient.Post(serverAddr+"/api/cookbook", "application/json", bytes.NewReader(body))
				if err != nil {
					return err
				}
				msg, _ := io.ReadAll(res.Body)
				res.Body.Close()
				if res.StatusCode != http.StatusOK {
					return fmt.Errorf("entry %d (%s) rejected: %s", i, c.Name, bytes.TrimSpace(msg))
				}
				inserted++
			}
			fmt.Printf("inserted %d entries\n", inserted)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "yaml file with a list of entries")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <name>",
		Short: "Flatten a recipe into cook time and base ingredients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/cookbook/summary/" + url.PathEscape(args[0]))
		},
	}
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <raw>",
		Short: "Normalize a raw entry name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(map[string]string{"input": args[0]})
			if err != nil {
				return err
			}
			res, err := httpClient.Post(serverAddr+"/api/names/normalize", "application/json", bytes.NewReader(body))
			if err != nil {
				return err
			}
			defer res.Body.Close()
			return printResponse(res)
		},
	}
}

func getJSON(path string) error {
	res, err := httpClient.Get(serverAddr + path)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return printResponse(res)
}

func printResponse(res *http.Response) error {
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s: %s", res.Status, bytes.TrimSpace(data))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, bytes.TrimSpace(data), "", "  "); err != nil {
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}
