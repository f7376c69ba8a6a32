package wsdl

import "encoding/xml"

// Raw XML parsing structures for WSDL 1.1
// These map directly to XML and are converted into a Document

// rawDefinitions is the root WSDL element
type rawDefinitions struct {
	XMLName         xml.Name      `xml:"definitions"`
	TargetNamespace string        `xml:"targetNamespace,attr"`
	Name            string        `xml:"name,attr"`
	Types           *rawTypes     `xml:"types"`
	Messages        []rawMessage  `xml:"message"`
	PortTypes       []rawPortType `xml:"portType"`
	Services        []rawService  `xml:"service"`
}

// rawTypes contains type definitions (XSD schemas), kept as generic
// node trees so enum lookup can walk them in document order
type rawTypes struct {
	Schemas []Node `xml:"schema"`
}

// rawMessage represents wsdl:message
type rawMessage struct {
	Name  string           `xml:"name,attr"`
	Parts []rawMessagePart `xml:"part"`
}

// rawMessagePart represents wsdl:part
type rawMessagePart struct {
	Name    string `xml:"name,attr"`
	Element string `xml:"element,attr"`
	Type    string `xml:"type,attr"`
}

// rawPortType represents wsdl:portType
type rawPortType struct {
	Name       string         `xml:"name,attr"`
	Operations []rawOperation `xml:"operation"`
}

// rawOperation represents wsdl:operation in a portType
type rawOperation struct {
	Name   string    `xml:"name,attr"`
	Input  *rawIORef `xml:"input"`
	Output *rawIORef `xml:"output"`
}

// rawIORef represents an input/output message reference
type rawIORef struct {
	Name    string `xml:"name,attr"`
	Message string `xml:"message,attr"`
}

// rawService represents wsdl:service
type rawService struct {
	Name string `xml:"name,attr"`
}
