package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyPort string = "PORT"

	EnvKeyAquaDBType string = "AQUA_DB_TYPE"
	EnvKeyAquaDbPath string = "AQUA_DB_PATH"

	EnvKeyAquaGrpcHostPort string = "AQUA_GRPC_HOST_PORT"

	EnvKeyAquaDefaultRate  string = "AQUA_DEFAULT_RATE"
	EnvKeyAquaDefaultBurst string = "AQUA_DEFAULT_BURST"

	EnvKeyAquaSessionTTL           string = "AQUA_SESSION_TTL"
	EnvKeyAquaSessionPurgeInterval string = "AQUA_SESSION_PURGE_INTERVAL"
	EnvKeyAquaRequireAuth          string = "AQUA_REQUIRE_AUTH"
	EnvKeyAquaOrphanFish           string = "AQUA_ORPHAN_FISH"
	EnvKeyAquaDemoUser             string = "AQUA_DEMO_USER"
	EnvKeyAquaDemoPassword         string = "AQUA_DEMO_PASSWORD"

	LoggerNameAquaCore       string = "aqua_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameGrpcServer     string = "grpc_server"
	LoggerNameDB             string = "db"
	LoggerFieldAquaCategory  string = "category"
	LoggerCategoryAquarium   string = "aquarium"
	LoggerCategoryFish       string = "fish"
	LoggerCategoryMeasure    string = "measurement"
	LoggerCategoryAuth       string = "auth"
	LoggerCategorySessionGC  string = "session_gc"
	LoggerFieldRemoteAddress string = "remote_addr"
)
