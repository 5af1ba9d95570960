package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-portal/internal/store"
	"github.com/jonathan/job-portal/internal/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo job postings into the database",
	Long:  `Insert a small set of demo job postings so the matching endpoints have data to work with.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	pg, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pg.Close()

	for _, job := range demoJobs() {
		if err := pg.CreateJob(ctx, &job); err != nil {
			return fmt.Errorf("failed to seed job %q: %w", job.Title, err)
		}
		fmt.Printf("seeded %q at %s (%s)\n", job.Title, job.Company, job.ID)
	}
	return nil
}

// demoJobs returns the demo postings used for local development.
func demoJobs() []types.Job {
	now := time.Now().UTC()
	return []types.Job{
		{
			Title:       "Frontend Developer",
			Company:     "Tech Corp",
			Location:    "Remote",
			Salary:      "$70,000 - $90,000",
			Description: "We are looking for a skilled Frontend Developer to join our team. You will be responsible for building user-facing features using React, JavaScript, and modern web technologies.",
			Skills:      []string{"React", "JavaScript", "HTML", "CSS", "Git"},
			PostedBy:    "hiring-manager@techcorp.com",
			PostedAt:    now,
		},
		{
			Title:       "Full Stack Developer",
			Company:     "StartupXYZ",
			Location:    "San Francisco, CA",
			Salary:      "$80,000 - $120,000",
			Description: "Join our dynamic startup as a Full Stack Developer. Work on cutting-edge projects using Node.js, React, and MongoDB.",
			Skills:      []string{"React", "Node.js", "MongoDB", "Express", "JavaScript"},
			PostedBy:    "hr@startupxyz.com",
			PostedAt:    now,
		},
	}
}
