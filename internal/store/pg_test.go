package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feral-file/ff-forge/internal/domain"
	"github.com/feral-file/ff-forge/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	err = testDB.AutoMigrate(
		&schema.RecipeSlot{},
		&schema.Token{},
		&schema.MetadataRecord{},
		&schema.Character{},
		&schema.TokenName{},
	)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// seedPool inserts n slots into a pool with slot numbers 1..n
func seedPool(t *testing.T, s Store, pool domain.RecipePool, n int) {
	t.Helper()

	slots := make([]schema.RecipeSlot, n)
	for i := range slots {
		slots[i] = schema.RecipeSlot{
			Pool:           string(pool),
			SlotNumber:     i + 1,
			StatPoints:     10 * (i + 1),
			CosmeticPoints: 5 * (i + 1),
			HeroTier:       string(domain.TierForPoints(10 * (i + 1))),
		}
	}
	require.NoError(t, s.SeedRecipeSlots(context.Background(), slots))
}

func revealInput(address string, pool domain.RecipePool, slot int) CommitRevealInput {
	return CommitRevealInput{
		TokenAddress: address,
		MintName:     fmt.Sprintf("Hero #%d", slot),
		MintNumber:   slot,
		Allocation: domain.Allocation{
			Pool:           pool,
			SlotNumber:     slot,
			StatPoints:     10 * slot,
			CosmeticPoints: 5 * slot,
			StatTier:       domain.TierForPoints(10 * slot),
			CosmeticTier:   domain.TierForPoints(5 * slot),
			HeroTier:       string(domain.TierForPoints(10 * slot)),
		},
		Minted: StageDocument{
			MetadataURL: "https://arweave.net/minted",
			ImageURL:    "https://arweave.net/minted.png",
			Document:    []byte(`{"name":"Hero","image":"https://arweave.net/minted.png"}`),
		},
		Revealed: StageDocument{
			MetadataURL: "https://ipfs.io/ipfs/QmRevealed",
			ImageURL:    "https://ipfs.io/ipfs/QmRevealedImage",
			Document:    []byte(`{"name":"Hero","image":"https://ipfs.io/ipfs/QmRevealedImage"}`),
		},
	}
}

func customizeInput(address, characterTokenID string) CommitCustomizeInput {
	return CommitCustomizeInput{
		TokenAddress:     address,
		CharacterTokenID: characterTokenID,
		TokenName:        "Grimbold",
		Skills: domain.Skills{
			Constitution: 10,
			Strength:     8, Dexterity: 7, Wisdom: 5, Intelligence: 6, Charisma: 4,
		},
		Traits: domain.CosmeticTraits{
			Race: "Human", Sex: "Male", FaceStyle: "Rugged", Background: "Forest",
		},
		Customized: StageDocument{
			MetadataURL: "https://ipfs.io/ipfs/QmCustomized",
			ImageURL:    "https://ipfs.io/ipfs/QmCustomizedImage",
			Document:    []byte(`{"token_name":"Grimbold"}`),
		},
	}
}

func TestSeedRecipeSlotsIdempotent(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()
	pool := domain.RecipePool("seed-pool")

	seedPool(t, s, pool, 3)
	// Re-seeding the same slots must not duplicate them
	seedPool(t, s, pool, 3)

	count, err := s.CountRecipeSlots(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGetTokenByAddressNotFound(t *testing.T) {
	s := NewPGStore(testDB)

	token, err := s.GetTokenByAddress(context.Background(), "B1SyDoesNotExist11111111111111111111111111")
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestCommitReveal(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()
	pool := domain.RecipePool("reveal-pool")
	seedPool(t, s, pool, 3)

	address := "Bv1pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHAYYYYY"
	token, err := s.CommitReveal(ctx, revealInput(address, pool, 2))
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, address, token.TokenAddress)
	assert.Equal(t, 2, token.SlotNumber)

	// Both stage records exist
	minted, err := s.GetMetadataRecord(ctx, token.ID, domain.StageMinted)
	require.NoError(t, err)
	require.NotNil(t, minted)
	assert.Equal(t, "https://arweave.net/minted", minted.MetadataURL)

	revealed, err := s.GetMetadataRecord(ctx, token.ID, domain.StageRevealed)
	require.NoError(t, err)
	require.NotNil(t, revealed)
	assert.Equal(t, "https://ipfs.io/ipfs/QmRevealed", revealed.MetadataURL)

	// The claimed slot no longer shows as available
	slots, err := s.ListAvailableRecipeSlots(ctx, pool)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.NotEqual(t, 2, slot.SlotNumber)
	}

	claimed, err := s.CountClaimedSlots(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claimed)
}

func TestCommitRevealAlreadyRevealed(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()
	pool := domain.RecipePool("reveal-twice-pool")
	seedPool(t, s, pool, 3)

	address := "Cv2pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHAZZZZZ"
	_, err := s.CommitReveal(ctx, revealInput(address, pool, 1))
	require.NoError(t, err)

	// Same address, different slot: the token is already revealed
	_, err = s.CommitReveal(ctx, revealInput(address, pool, 2))
	assert.ErrorIs(t, err, domain.ErrAlreadyRevealed)
}

func TestCommitRevealAllocationCollision(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()
	pool := domain.RecipePool("collision-pool")
	seedPool(t, s, pool, 3)

	_, err := s.CommitReveal(ctx, revealInput("Dv3pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA1111", pool, 1))
	require.NoError(t, err)

	// Different address, same slot: the slot was won by the first writer
	_, err = s.CommitReveal(ctx, revealInput("Ev4pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA2222", pool, 1))
	assert.ErrorIs(t, err, domain.ErrAllocationCollision)

	// No partial rows leaked from the rolled back commit
	token, err := s.GetTokenByAddress(ctx, "Ev4pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA2222")
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestCommitCustomize(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()
	pool := domain.RecipePool("customize-pool")
	seedPool(t, s, pool, 3)

	address := "Fv5pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA3333"
	token, err := s.CommitReveal(ctx, revealInput(address, pool, 1))
	require.NoError(t, err)

	err = s.CommitCustomize(ctx, customizeInput(address, "char-0001"))
	require.NoError(t, err)

	customized, err := s.GetMetadataRecord(ctx, token.ID, domain.StageCustomized)
	require.NoError(t, err)
	require.NotNil(t, customized)
	assert.Equal(t, "https://ipfs.io/ipfs/QmCustomized", customized.MetadataURL)

	taken, err := s.IsCharacterTokenIDTaken(ctx, "char-0001")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestCommitCustomizeNotRevealed(t *testing.T) {
	s := NewPGStore(testDB)

	err := s.CommitCustomize(context.Background(), customizeInput("Gv6pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA4444", "char-0002"))
	assert.ErrorIs(t, err, domain.ErrNotRevealed)
}

func TestCommitCustomizeAlreadyCustomized(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()
	pool := domain.RecipePool("customize-twice-pool")
	seedPool(t, s, pool, 3)

	address := "Hv7pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA5555"
	_, err := s.CommitReveal(ctx, revealInput(address, pool, 1))
	require.NoError(t, err)

	require.NoError(t, s.CommitCustomize(ctx, customizeInput(address, "char-0003")))

	err = s.CommitCustomize(ctx, customizeInput(address, "char-0004"))
	assert.ErrorIs(t, err, domain.ErrAlreadyCustomized)
}

func TestCommitCustomizeTokenIDTaken(t *testing.T) {
	s := NewPGStore(testDB)
	ctx := context.Background()
	pool := domain.RecipePool("taken-id-pool")
	seedPool(t, s, pool, 3)

	first := "Jv8pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA6666"
	second := "Kv9pJc8NHirBU1EXHfKKDJoH93GPArt4YSNTLHA7777"
	_, err := s.CommitReveal(ctx, revealInput(first, pool, 1))
	require.NoError(t, err)
	_, err = s.CommitReveal(ctx, revealInput(second, pool, 2))
	require.NoError(t, err)

	require.NoError(t, s.CommitCustomize(ctx, customizeInput(first, "char-shared")))

	err = s.CommitCustomize(ctx, customizeInput(second, "char-shared"))
	assert.ErrorIs(t, err, domain.ErrTokenNameTaken)
}
