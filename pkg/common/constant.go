package common

const (
	EDMSVersion string = "0.2"

	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyIOTDBType string = "IOT_DB_TYPE"
	EnvKeyIOTDbPath string = "IOT_DB_PATH"
	EnvKeyIOTDbDSN  string = "IOT_DB_DSN"

	EnvKeyIOTLogDir   string = "IOT_LOG_DIR"
	EnvKeyIOTLogLevel string = "IOT_LOG_LEVEL"

	EnvKeyIOTHttpHostPort string = "IOT_HTTP_HOST_PORT"
	EnvKeyIOTGrpcHostPort string = "IOT_GRPC_HOST_PORT"

	EnvKeyIOTDefaultRate  string = "IOT_DEFAULT_RATE"
	EnvKeyIOTDefaultBurst string = "IOT_DEFAULT_BURST"

	EnvKeyIOTMqttBroker   string = "IOT_MQTT_BROKER"
	EnvKeyIOTMqttTopic    string = "IOT_MQTT_TOPIC"
	EnvKeyIOTMqttClientID string = "IOT_MQTT_CLIENT_ID"
	EnvKeyIOTMqttUsername string = "IOT_MQTT_USERNAME"
	EnvKeyIOTMqttPassword string = "IOT_MQTT_PASSWORD"

	LoggerNameIOTCore         string = "iot_core"
	LoggerNameRestfulServer   string = "restful_server"
	LoggerNameGrpcServer      string = "grpc_server"
	LoggerNameMqttSubscriber  string = "mqtt_subscriber"
	LoggerFieldIOTCategory    string = "category"
	LoggerCategoryIOTReport   string = "report"
	LoggerCategoryIOTDevice   string = "device"
	LoggerCategoryIOTGroup    string = "group"
	LoggerCategoryIOTProperty string = "property"
	LoggerCategoryIOTEvent    string = "event"
	LoggerCategoryIOTSettings string = "settings"
)

// Engine settings stored in the settings table.
const (
	SettingReportIdentifiers     string = "report.identifiers"
	SettingReportFlatten         string = "report.flatten"
	SettingReportGroupField      string = "report.group_field"
	SettingReportGroupAutocreate string = "report.group_autocreate"

	DefaultReportIdentifiers     string = "ident,hostname"
	DefaultReportFlatten         string = "true"
	DefaultReportGroupField      string = "device_group"
	DefaultReportGroupAutocreate string = "false"
)
