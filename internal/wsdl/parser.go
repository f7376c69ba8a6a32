package wsdl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrLoad is wrapped by every error returned from Parse: the description
// could not be fetched or is not a usable WSDL document.
var ErrLoad = errors.New("failed to load service description")

// Parser fetches and parses WSDL documents from local paths or HTTP URLs.
type Parser struct {
	client *http.Client
}

// NewParser creates a WSDL parser with a default HTTP client.
func NewParser() *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithClient sets a custom HTTP client
func (p *Parser) WithClient(client *http.Client) *Parser {
	p.client = client
	return p
}

// Parse loads the WSDL at location (a filesystem path or http(s) URL) and
// returns the parsed Document.
func (p *Parser) Parse(location string) (*Document, error) {
	data, err := p.fetch(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, location, err)
	}
	return p.ParseBytes(data, location)
}

// ParseBytes parses an in-memory WSDL document.
func (p *Parser) ParseBytes(data []byte, location string) (*Document, error) {
	var raw rawDefinitions
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, location, err)
	}

	doc := &Document{
		location: location,
		messages: make(map[string]rawMessage, len(raw.Messages)),
	}
	for _, m := range raw.Messages {
		doc.messages[m.Name] = m
	}
	doc.portTypes = raw.PortTypes
	for _, s := range raw.Services {
		doc.services = append(doc.services, s.Name)
	}
	if raw.Types != nil {
		doc.schemas = raw.Types.Schemas
	}

	return doc, nil
}

func (p *Parser) fetch(location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		resp, err := p.client.Get(location)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status: %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(location)
}
