package configkey

const (
	LogLevel      = "log.level"
	DebugMode     = "debug"
	RequestLogger = "request.logger"

	DatabaseUsername = "database.username"
	DatabaseDatabase = "database.database"
	DatabaseHost     = "database.host"
	DatabasePort     = "database.port"
	DatabaseSSLMode  = "database.sslmode"
	DatabaseTimezone = "database.timezone"
	DatabasePassword = "database.password"

	MinioAccessKey = "minio.access.key"
	MinioSecretKey = "minio.secret.key"
	MinioHost      = "minio.host"
	MinioSecure    = "minio.secure"

	HubPort = "hub.port"
	HubURL  = "hub.url"

	StoreBackend = "store.backend"

	IssuanceAutopick = "issuance.autopick"

	ArchiveEnabled = "archive.enabled"
	ArchiveBucket  = "archive.bucket"
)
