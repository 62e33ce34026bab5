package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
temporal:
  host_port: "temporal.example.com:7233"
  namespace: "production"
  forge_task_queue: "custom-forge-queue"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "temporal.example.com:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "production", cfg.Temporal.Namespace)
				assert.Equal(t, "custom-forge-queue", cfg.Temporal.ForgeTaskQueue)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "nft-forge", cfg.Temporal.ForgeTaskQueue)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadWorkerForgeConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WorkerForgeConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
temporal:
  host_port: "localhost:7233"
  namespace: "default"
  forge_task_queue: "custom-forge-queue"
  max_concurrent_activity_execution_size: 100
  worker_activities_per_second: 100
uri:
  ipfs_gateways:
    - "https://ipfs.io"
    - "https://gateway.pinata.cloud"
  arweave_gateways:
    - "https://arweave.net"
render:
  url: "nats://localhost:4222"
  stream_name: "CUSTOM_RENDER"
  subject_prefix: "custom.render"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
  job_timeout: "15m"
pinata:
  api_url: "https://api.pinata.cloud"
  gateway_url: "https://custom-gateway.pinata.cloud"
  api_key: "test-key"
  api_secret: "test-secret"
solana:
  signer_gateway_url: "https://signer.example.com"
  keypair_path: "/path/to/keypair.json"
forge:
  site_url: "https://forge.example.com"
  reveal_max_attempts: 3
  hero_images:
    woodland_respite/legendary: "https://gateway.pinata.cloud/ipfs/QmWoodlandLegendary"
    dawn_of_man/common: "https://gateway.pinata.cloud/ipfs/QmDawnCommon"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *WorkerForgeConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "custom-forge-queue", cfg.Temporal.ForgeTaskQueue)
				assert.Equal(t, 100, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 100.0, cfg.Temporal.WorkerActivitiesPerSecond)
				assert.Len(t, cfg.URI.IPFSGateways, 2)
				assert.Len(t, cfg.URI.ArweaveGateways, 1)
				assert.Equal(t, "nats://localhost:4222", cfg.Render.URL)
				assert.Equal(t, "CUSTOM_RENDER", cfg.Render.StreamName)
				assert.Equal(t, "custom.render", cfg.Render.SubjectPrefix)
				assert.Equal(t, 5, cfg.Render.MaxReconnects)
				assert.Equal(t, 5*time.Second, cfg.Render.ReconnectWait)
				assert.Equal(t, 15*time.Minute, cfg.Render.JobTimeout)
				assert.Equal(t, "https://custom-gateway.pinata.cloud", cfg.Pinata.GatewayURL)
				assert.Equal(t, "test-key", cfg.Pinata.APIKey)
				assert.Equal(t, "test-secret", cfg.Pinata.APISecret)
				assert.Equal(t, "https://signer.example.com", cfg.Solana.SignerGatewayURL)
				assert.Equal(t, "/path/to/keypair.json", cfg.Solana.KeypairPath)
				assert.Equal(t, "https://forge.example.com", cfg.Forge.SiteURL)
				assert.Equal(t, 3, cfg.Forge.RevealMaxAttempts)
				assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmWoodlandLegendary", cfg.Forge.HeroImages["woodland_respite/legendary"])
				assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmDawnCommon", cfg.Forge.HeroImages["dawn_of_man/common"])
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
render:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *WorkerForgeConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "nft-forge", cfg.Temporal.ForgeTaskQueue)
				assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 50.0, cfg.Temporal.WorkerActivitiesPerSecond)
				assert.Len(t, cfg.URI.IPFSGateways, 2)
				assert.Len(t, cfg.URI.ArweaveGateways, 1)
				assert.Equal(t, "FORGE_RENDER", cfg.Render.StreamName)
				assert.Equal(t, "forge.render", cfg.Render.SubjectPrefix)
				assert.Equal(t, 10, cfg.Render.MaxReconnects)
				assert.Equal(t, "2s", cfg.Render.ReconnectWait.String())
				assert.Equal(t, 10*time.Minute, cfg.Render.JobTimeout)
				assert.Equal(t, "https://api.pinata.cloud", cfg.Pinata.APIURL)
				assert.Equal(t, "https://gateway.pinata.cloud", cfg.Pinata.GatewayURL)
				assert.Equal(t, 5, cfg.Forge.RevealMaxAttempts)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadWorkerForgeConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		ReadHost: "replica",
		User:     "user",
		Password: "pass",
		DBName:   "db",
		SSLMode:  "disable",
	}

	// ReadPort falls back to Port when unset
	assert.Equal(t, "host=replica port=5432 user=user password=pass dbname=db sslmode=disable", cfg.ReadDSN())

	cfg.ReadPort = 5433
	assert.Equal(t, "host=replica port=5433 user=user password=pass dbname=db sslmode=disable", cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses FF_FORGE_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `FF_FORGE_DEBUG=true
FF_FORGE_DATABASE_HOST=env-host
FF_FORGE_DATABASE_PORT=3306
FF_FORGE_DATABASE_USER=env-user
FF_FORGE_DATABASE_PASSWORD=env-pass
FF_FORGE_DATABASE_DBNAME=env-db
FF_FORGE_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify that environment variables from .env file override config file values
	// The .env file is loaded via godotenv.Overload, which sets actual environment variables
	// Viper's AutomaticEnv then picks them up with FF_FORGE_ prefix
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
