package wsdl

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const peopleWSDL = `<?xml version="1.0"?>
<definitions name="People" targetNamespace="urn:people"
  xmlns="http://schemas.xmlsoap.org/wsdl/"
  xmlns:xsd="http://www.w3.org/2001/XMLSchema"
  xmlns:tns="urn:people">
  <types>
    <xsd:schema targetNamespace="urn:people">
      <xsd:complexType name="Person">
        <xsd:sequence>
          <xsd:element name="name" type="xsd:string"/>
          <xsd:element name="age" type="xsd:int"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ArrayOfPerson">
        <xsd:sequence>
          <xsd:element name="item" type="tns:Person" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:simpleType name="Rating">
        <xsd:restriction base="xsd:string">
          <xsd:enumeration value="GOOD"/>
          <xsd:enumeration value="AVERAGE"/>
          <xsd:enumeration value="BAD"/>
        </xsd:restriction>
      </xsd:simpleType>
    </xsd:schema>
  </types>
  <message name="getPersonRequest">
    <part name="id" type="xsd:string"/>
  </message>
  <message name="getPersonResponse">
    <part name="person" type="tns:Person"/>
  </message>
  <message name="getPairRequest"/>
  <message name="getPairResponse">
    <part name="a" type="xsd:string"/>
    <part name="b" type="xsd:string"/>
  </message>
  <portType name="PeoplePortType">
    <operation name="getPerson">
      <input message="tns:getPersonRequest"/>
      <output message="tns:getPersonResponse"/>
    </operation>
    <operation name="getPair">
      <input message="tns:getPairRequest"/>
      <output message="tns:getPairResponse"/>
    </operation>
  </portType>
  <service name="People">
    <port name="PeoplePort" binding="tns:PeopleBinding"/>
  </service>
</definitions>`

func TestParser_OperationSignatures(t *testing.T) {
	// Test plan:
	// - RPC-style parts become typed parameters
	// - A single output part is the scalar return type
	// - Multiple output parts become the list return marker

	doc, err := NewParser().ParseBytes([]byte(peopleWSDL), "people.wsdl")
	require.NoError(t, err)

	sigs := doc.OperationSignatures()
	require.Len(t, sigs, 2)
	assert.Equal(t, "Person getPerson(string $id)", sigs[0])
	assert.Equal(t, "list(string $a, string $b) getPair()", sigs[1])
}

func TestParser_TypeSignatures(t *testing.T) {
	// Test plan:
	// - complexTypes become struct signatures in document order
	// - simpleType restrictions become one-line signatures

	doc, err := NewParser().ParseBytes([]byte(peopleWSDL), "people.wsdl")
	require.NoError(t, err)

	sigs := doc.TypeSignatures()
	require.Len(t, sigs, 3)
	assert.Equal(t, "struct Person {\n string name;\n int age;\n}", sigs[0])
	assert.Equal(t, "struct ArrayOfPerson {\n Person item;\n}", sigs[1])
	assert.Equal(t, "string Rating", sigs[2])
}

func TestParser_ServiceName(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte(peopleWSDL), "people.wsdl")
	require.NoError(t, err)

	name, ok := doc.ServiceName()
	require.True(t, ok)
	assert.Equal(t, "People", name)
}

func TestDocument_EnumLookup(t *testing.T) {
	// Test plan:
	// - FindSchemaNode matches the node by name attribute
	// - Enumeration values are collected in document order

	doc, err := NewParser().ParseBytes([]byte(peopleWSDL), "people.wsdl")
	require.NoError(t, err)

	node := doc.FindSchemaNode("Rating")
	require.NotNil(t, node)
	assert.Equal(t, []string{"GOOD", "AVERAGE", "BAD"}, doc.EnumerationValues(node))

	// Test: unknown names yield nil, not an error
	assert.Nil(t, doc.FindSchemaNode("Nope"))
	assert.Nil(t, doc.EnumerationValues(nil))
}

func TestParser_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.wsdl")
	require.NoError(t, os.WriteFile(path, []byte(peopleWSDL), 0o644))

	doc, err := NewParser().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Location())
}

func TestParser_LoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(peopleWSDL))
	}))
	defer srv.Close()

	doc, err := NewParser().Parse(srv.URL)
	require.NoError(t, err)

	_, ok := doc.ServiceName()
	assert.True(t, ok)
}

func TestParser_LoadErrors(t *testing.T) {
	// Test plan:
	// - Unreachable input wraps ErrLoad
	// - Malformed XML wraps ErrLoad
	// - A non-200 response wraps ErrLoad

	_, err := NewParser().Parse(filepath.Join(t.TempDir(), "missing.wsdl"))
	assert.ErrorIs(t, err, ErrLoad)

	_, err = NewParser().ParseBytes([]byte("<definitions"), "bad.wsdl")
	assert.ErrorIs(t, err, ErrLoad)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err = NewParser().Parse(srv.URL)
	assert.ErrorIs(t, err, ErrLoad)
}
