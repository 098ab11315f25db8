package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/internal/config"
	"github.com/PraDhYoT2709/PatientManageentSystem-Microservice/chatbot-service/pkg/log"
)

// instance is the registration document the eureka server expects.
type instance struct {
	InstanceID     string         `json:"instanceId"`
	HostName       string         `json:"hostName"`
	App            string         `json:"app"`
	IPAddr         string         `json:"ipAddr"`
	Status         string         `json:"status"`
	Port           portWrapper    `json:"port"`
	SecurePort     portWrapper    `json:"securePort"`
	HealthCheckURL string         `json:"healthCheckUrl"`
	StatusPageURL  string         `json:"statusPageUrl"`
	HomePageURL    string         `json:"homePageUrl"`
	VIPAddress     string         `json:"vipAddress"`
	DataCenterInfo dataCenterInfo `json:"dataCenterInfo"`
}

type portWrapper struct {
	Port    int  `json:"$"`
	Enabled bool `json:"@enabled"`
}

type dataCenterInfo struct {
	Class string `json:"@class"`
	Name  string `json:"name"`
}

type registrationBody struct {
	Instance instance `json:"instance"`
}

// EurekaRegistry registers this instance once at startup and renews the
// registration on a fixed interval until Stop or context cancellation.
// Identity fields are computed once in the constructor and never change.
type EurekaRegistry struct {
	http       *resty.Client
	serverURL  string
	app        string // upper-cased registry key
	instanceID string
	document   instance
	interval   time.Duration
	cancel     context.CancelFunc
}

func NewEurekaRegistry(cfg config.EurekaConfig, server config.ServerConfig) *EurekaRegistry {
	instanceID := fmt.Sprintf("%s:%s:%d", server.Hostname, cfg.AppName, server.Port)
	app := strings.ToUpper(cfg.AppName)
	serviceBase := fmt.Sprintf("http://%s:%d", server.Hostname, server.Port)

	return &EurekaRegistry{
		http:       resty.New().SetTimeout(cfg.RequestTimeout),
		serverURL:  cfg.ServerURL,
		app:        app,
		instanceID: instanceID,
		interval:   cfg.HeartbeatInterval,
		document: instance{
			InstanceID:     instanceID,
			HostName:       server.Hostname,
			App:            app,
			IPAddr:         cfg.InstanceIP,
			Status:         "UP",
			Port:           portWrapper{Port: server.Port, Enabled: true},
			SecurePort:     portWrapper{Port: 443, Enabled: false},
			HealthCheckURL: serviceBase + "/actuator/health",
			StatusPageURL:  serviceBase + "/actuator/info",
			HomePageURL:    serviceBase + "/",
			VIPAddress:     cfg.AppName,
			DataCenterInfo: dataCenterInfo{
				Class: "com.netflix.appinfo.InstanceInfo$DefaultDataCenterInfo",
				Name:  "MyOwn",
			},
		},
	}
}

// Start fires the one-shot registration and the heartbeat loop. Both
// run decoupled from the request path and share nothing mutable with
// it.
func (r *EurekaRegistry) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	go r.register(ctx)
	go r.heartbeatLoop(ctx)

	l := log.L()
	l.Info().
		Str(log.FieldInstanceID, r.instanceID).
		Dur("interval", r.interval).
		Msg("registry heartbeat started")
}

// Stop cancels the background activity. Safe to call before Start.
func (r *EurekaRegistry) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *EurekaRegistry) register(ctx context.Context) {
	resp, err := r.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registrationBody{Instance: r.document}).
		Post(r.appsURL())
	l := log.L()
	if err != nil {
		l.Warn().Err(err).Msg("eureka registration failed")
		return
	}
	if resp.IsError() {
		// Renewals may still be accepted later, keep heartbeating.
		l.Warn().Int(log.FieldStatus, resp.StatusCode()).Msg("eureka registration rejected")
		return
	}

	l.Info().Str(log.FieldInstanceID, r.instanceID).Msg("registered with eureka")
}

func (r *EurekaRegistry) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Each renewal is independent: no backoff, no retry budget.
			r.renew(ctx)
		}
	}
}

func (r *EurekaRegistry) renew(ctx context.Context) {
	resp, err := r.http.R().
		SetContext(ctx).
		Put(r.appsURL() + "/" + r.instanceID)
	l := log.L()
	if err != nil {
		l.Warn().Err(err).Msg("eureka renewal failed")
		return
	}
	if resp.IsError() {
		l.Warn().Int(log.FieldStatus, resp.StatusCode()).Msg("eureka renewal rejected")
	}
}

func (r *EurekaRegistry) appsURL() string {
	return r.serverURL + "/apps/" + r.app
}
