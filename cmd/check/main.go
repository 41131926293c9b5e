// Command check verifies the backing-service configuration: required
// environment variables, database connectivity and schema, and bucket
// reachability. Run it after editing .env to confirm the gallery can start.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var requiredVars = []string{
	"APP_ENV",
	"S3_REGION",
	"S3_BUCKET",
	"S3_ACCESS_KEY",
	"S3_SECRET_KEY",
}

var requiredTables = []string{"categories", "characters"}

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("no .env file found, using environment variables")
	}

	fmt.Println("checking gallery configuration...")
	fmt.Println()

	failed := false

	fmt.Println("1. environment variables")
	for _, key := range requiredVars {
		if os.Getenv(key) == "" {
			fmt.Printf("   MISSING %s\n", key)
			failed = true
		} else {
			fmt.Printf("   ok      %s\n", key)
		}
	}

	fmt.Println()
	fmt.Println("2. database")
	if !checkDatabase() {
		failed = true
	}

	fmt.Println()
	fmt.Println("3. image bucket")
	if !checkBucket() {
		failed = true
	}

	fmt.Println()
	if failed {
		fmt.Println("configuration problems found; fix the items above and re-run")
		os.Exit(1)
	}
	fmt.Println("everything looks good")
}

func checkDatabase() bool {
	driver := envOr("DB_DRIVER", "sqlite")
	connection := envOr("DB_CONNECTION", "./data/galleria.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")

	db, err := sqlx.Connect(driver, connection)
	if err != nil {
		fmt.Printf("   FAILED connect (%s): %v\n", driver, err)
		return false
	}
	defer func() { _ = db.Close() }()

	fmt.Printf("   ok      connected (%s)\n", driver)

	ok := true
	for _, table := range requiredTables {
		var count int
		err = db.Get(&count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
		if err != nil {
			fmt.Printf("   MISSING table %q (run the server once to migrate): %v\n", table, err)
			ok = false
			continue
		}
		fmt.Printf("   ok      table %q (%d rows)\n", table, count)
	}
	return ok
}

func checkBucket() bool {
	region := os.Getenv("S3_REGION")
	bucket := os.Getenv("S3_BUCKET")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	endpoint := os.Getenv("S3_ENDPOINT")

	if region == "" || bucket == "" {
		fmt.Println("   SKIPPED (storage env vars missing)")
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		fmt.Printf("   FAILED load AWS config: %v\n", err)
		return false
	}

	var client *s3.Client
	if endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		fmt.Printf("   FAILED bucket %q not reachable: %v\n", bucket, err)
		return false
	}

	fmt.Printf("   ok      bucket %q reachable\n", bucket)
	return true
}

func envOr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
