package redis_client

import (
	"context"
	"strconv"

	"github.com/moduro/moduro/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["MODURO_REDIS_ADDRESS"] != "" {
		address = env["MODURO_REDIS_ADDRESS"]
	}

	if env["MODURO_REDIS_PASSWORD"] != "" {
		password = env["MODURO_REDIS_PASSWORD"]
	}

	if env["MODURO_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["MODURO_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}
