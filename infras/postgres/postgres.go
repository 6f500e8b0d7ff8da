package postgres

//nolint:revive
import (
	"daily/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresDriverName        = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection splits traffic between a read replica and the primary.
// Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	return &Connection{
		Read:  connect("read", pg.Read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", pg.Write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing database connection")
		}
	}
}

func descriptor(ep config.DatabaseEndpoint) string {
	query := url.Values{}
	query.Set("sslmode", ep.SSLMode)

	if ep.Timezone != "" {
		query.Set("timezone", ep.Timezone)
	}

	dsn := url.URL{
		Scheme:   postgresDriverName,
		User:     url.UserPassword(ep.Username, ep.Password),
		Host:     net.JoinHostPort(ep.Host, ep.Port),
		Path:     ep.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect opens one endpoint, retrying maxRetry times.
func connect(name string, ep config.DatabaseEndpoint, maxRetry, waitTime int) *sqlx.DB {
	for retry := 0; retry < max(maxRetry, 1); retry++ {
		sqlDB, err := sqlx.Connect(postgresDriverName, descriptor(ep))
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", ep.Host).
				Str("port", ep.Port).
				Str("dbName", ep.Name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", ep.Host).
			Str("port", ep.Port).
			Str("dbName", ep.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Msgf("Giving up on database after %d attempts", max(maxRetry, 1))

	return nil
}
