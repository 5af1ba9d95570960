// Package main provides the entry point for the Job Portal HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_portal",
	Short: "Job Portal API Server",
	Long:  "Job Portal serves the candidate-job matching and application lifecycle API: applicant ranking against job requirements and status transitions with candidate notifications.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
