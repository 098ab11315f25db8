package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/pkg/log"
)

// fallbackAppointmentBaseURL is the appointment service's DNS name on
// the deployment's internal network.
const fallbackAppointmentBaseURL = "http://appointment-service:8083"

type Config struct {
	Server     ServerConfig
	Eureka     EurekaConfig
	Downstream DownstreamConfig
	Log        log.Config
}

type ServerConfig struct {
	Host     string
	Port     int
	Hostname string
}

// EurekaConfig describes this instance to the service registry.
// An empty ServerURL disables registration and heartbeats entirely.
type EurekaConfig struct {
	ServerURL         string        `mapstructure:"server_url"`
	AppName           string        `mapstructure:"app_name"`
	InstanceIP        string        `mapstructure:"instance_ip"`
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
}

// DownstreamConfig holds the base URLs for the domain services.
// Patient and doctor URLs are part of the deployment surface but only
// the appointment service is called by the chat flow today.
type DownstreamConfig struct {
	GatewayURL     string        `mapstructure:"gateway_url"`
	AppointmentURL string        `mapstructure:"appointment_url"`
	PatientURL     string        `mapstructure:"patient_url"`
	DoctorURL      string        `mapstructure:"doctor_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// AppointmentBaseURL resolves the base URL for the appointment service.
// Precedence is fixed: direct override, then API gateway, then the
// internal network fallback. Never returns an empty string.
func (d DownstreamConfig) AppointmentBaseURL() string {
	if d.AppointmentURL != "" {
		return d.AppointmentURL
	}
	if d.GatewayURL != "" {
		return d.GatewayURL + "/appointments"
	}
	return fallbackAppointmentBaseURL
}

// Load reads configuration once at startup: optional config.yaml plus
// the environment variables the deployment sets.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8085)
	v.SetDefault("server.hostname", defaultHostname())
	v.SetDefault("eureka.server_url", "")
	v.SetDefault("eureka.app_name", "chatbot-service")
	v.SetDefault("eureka.instance_ip", "127.0.0.1")
	v.SetDefault("eureka.heartbeat_interval", "30s")
	v.SetDefault("eureka.request_timeout", "5s")
	v.SetDefault("downstream.gateway_url", "")
	v.SetDefault("downstream.appointment_url", "")
	v.SetDefault("downstream.patient_url", "")
	v.SetDefault("downstream.doctor_url", "")
	v.SetDefault("downstream.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Deployment environment variables, same names the platform's other
	// services use.
	v.BindEnv("server.port", "SERVICE_PORT")
	v.BindEnv("server.hostname", "SERVICE_HOSTNAME")
	v.BindEnv("eureka.server_url", "EUREKA_CLIENT_SERVICE_URL_DEFAULTZONE", "EUREKA_SERVER_URL")
	v.BindEnv("eureka.app_name", "EUREKA_APP_NAME")
	v.BindEnv("eureka.instance_ip", "POD_IP")
	v.BindEnv("downstream.gateway_url", "API_GATEWAY_URL")
	v.BindEnv("downstream.appointment_url", "APPOINTMENT_SERVICE_BASE_URL")
	v.BindEnv("downstream.patient_url", "PATIENT_SERVICE_BASE_URL")
	v.BindEnv("downstream.doctor_url", "DOCTOR_SERVICE_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Eureka.HeartbeatInterval = parseDuration(v, "eureka.heartbeat_interval", 30*time.Second)
	cfg.Eureka.RequestTimeout = parseDuration(v, "eureka.request_timeout", 5*time.Second)
	cfg.Downstream.Timeout = parseDuration(v, "downstream.timeout", 10*time.Second)

	cfg.Eureka.ServerURL = normalizeBaseURL(cfg.Eureka.ServerURL)
	cfg.Downstream.GatewayURL = normalizeBaseURL(cfg.Downstream.GatewayURL)
	cfg.Downstream.AppointmentURL = normalizeBaseURL(cfg.Downstream.AppointmentURL)
	cfg.Downstream.PatientURL = normalizeBaseURL(cfg.Downstream.PatientURL)
	cfg.Downstream.DoctorURL = normalizeBaseURL(cfg.Downstream.DoctorURL)

	if cfg.Log.ServiceName == "" {
		cfg.Log.ServiceName = cfg.Eureka.AppName
	}

	return &cfg, nil
}

func normalizeBaseURL(url string) string {
	return strings.TrimRight(url, "/")
}

func defaultHostname() string {
	if h := os.Getenv("HOSTNAME"); h != "" {
		return h
	}
	return "localhost"
}

func parseDuration(v *viper.Viper, key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return defaultVal
	}
	return d
}
