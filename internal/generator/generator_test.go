package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crono/wsdl2phpgenerator-cli/internal/config"
	"github.com/crono/wsdl2phpgenerator-cli/internal/schema"
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
          <xsd:enumeration value="BAD"/>
        </xsd:restriction>
      </xsd:simpleType>
    </xsd:schema>
  </types>
  <message name="getNameRequest">
    <part name="id" type="xsd:string"/>
  </message>
  <message name="getNameResponse">
    <part name="name" type="xsd:string"/>
  </message>
  <message name="getPairRequest"/>
  <message name="getPairResponse">
    <part name="a" type="xsd:string"/>
    <part name="b" type="xsd:string"/>
  </message>
  <message name="savePersonRequest">
    <part name="person" type="tns:Person"/>
  </message>
  <message name="savePersonResponse">
    <part name="rating" type="tns:Rating"/>
  </message>
  <portType name="PeoplePortType">
    <operation name="getName">
      <input message="tns:getNameRequest"/>
      <output message="tns:getNameResponse"/>
    </operation>
    <operation name="getPair">
      <input message="tns:getPairRequest"/>
      <output message="tns:getPairResponse"/>
    </operation>
    <operation name="savePerson">
      <input message="tns:savePersonRequest"/>
      <output message="tns:savePersonResponse"/>
    </operation>
  </portType>
  <service name="People">
    <port name="PeoplePort" binding="tns:PeopleBinding"/>
  </service>
</definitions>`

func writeWSDL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service.wsdl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runGeneration(t *testing.T, cfg *config.Config) string {
	t.Helper()
	if cfg.OutputDir == "" {
		cfg.OutputDir = t.TempDir()
	}
	require.NoError(t, New(cfg).Generate(context.Background()))
	return cfg.OutputDir
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_SingleFile(t *testing.T) {
	// Test plan:
	// - One merged file named after the service
	// - Method body forwards the parameter to the remote call (scenario A)
	// - List return operation keeps empty parameters (scenario B)
	// - Array wrapper type is never generated

	cfg := &config.Config{
		InputFile:         writeWSDL(t, peopleWSDL),
		OneFilePerService: true,
	}
	out := runGeneration(t, cfg)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "People.php", entries[0].Name())

	content := readOutput(t, out, "People.php")

	// Scenario A
	assert.Contains(t, content, "public function getName($id)")
	assert.Contains(t, content, "return $this->__soapCall('getName', array($id));")

	// Scenario B
	assert.Contains(t, content, "public function getPair()")
	assert.Contains(t, content, "@return list(string $a, string $b)")
	assert.Contains(t, content, "return $this->__soapCall('getPair', array());")

	// Non-primitive parameter keeps its type hint
	assert.Contains(t, content, "public function savePerson(Person $person)")

	assert.Contains(t, content, "class People extends SoapClient")
	assert.Contains(t, content, "class Person")
	assert.NotContains(t, content, "ArrayOfPerson")

	// Enum type renders as string constants
	assert.Contains(t, content, "class Rating")
	assert.Contains(t, content, "const GOOD = 'GOOD';")
	assert.Contains(t, content, "const BAD = 'BAD';")
}

func TestGenerate_ClassMap(t *testing.T) {
	// Test: the classmap holds one entry per non-array type, raw names as keys
	cfg := &config.Config{
		InputFile:         writeWSDL(t, peopleWSDL),
		OneFilePerService: true,
		Suffix:            "Dto",
	}
	out := runGeneration(t, cfg)
	content := readOutput(t, out, "PeopleDto.php")

	assert.Contains(t, content, "private static $classmap = array(")
	assert.Contains(t, content, "'Person' => 'PersonDto',")
	assert.Contains(t, content, "'Rating' => 'RatingDto',")
	assert.NotContains(t, content, "'ArrayOfPerson'")
}

func TestGenerate_PerTypeFiles(t *testing.T) {
	// Test plan (scenario D):
	// - Two type files plus one service file
	// - The service file declares a dependency on both type files

	cfg := &config.Config{
		InputFile: writeWSDL(t, peopleWSDL),
	}
	out := runGeneration(t, cfg)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.ElementsMatch(t, []string{"People.php", "Person.php", "Rating.php"}, names)

	service := readOutput(t, out, "People.php")
	assert.Contains(t, service, "require_once('Person.php');")
	assert.Contains(t, service, "require_once('Rating.php');")

	person := readOutput(t, out, "Person.php")
	assert.Contains(t, person, "public $name;")
	assert.Contains(t, person, "public $age;")
	assert.NotContains(t, person, "require_once")
}

func TestGenerate_TypeConstructor(t *testing.T) {
	// Test plan:
	// - The constructor mirrors member order and assigns positionally
	// - noTypeConstructor omits it entirely

	cfg := &config.Config{InputFile: writeWSDL(t, peopleWSDL)}
	out := runGeneration(t, cfg)
	person := readOutput(t, out, "Person.php")
	assert.Contains(t, person, "public function __construct($name, $age)")
	assert.Contains(t, person, "$this->name = $name;")
	assert.Contains(t, person, "$this->age = $age;")

	cfg = &config.Config{
		InputFile:         writeWSDL(t, peopleWSDL),
		NoTypeConstructor: true,
	}
	out = runGeneration(t, cfg)
	person = readOutput(t, out, "Person.php")
	assert.NotContains(t, person, "__construct")
}

func TestGenerate_AllowList(t *testing.T) {
	// Test plan:
	// - Only allow-listed classes are written
	// - The service file obeys the same filter

	cfg := &config.Config{
		InputFile:  writeWSDL(t, peopleWSDL),
		ClassNames: []string{"Person"},
	}
	out := runGeneration(t, cfg)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Person.php", entries[0].Name())
}

func TestGenerate_RuntimeOptions(t *testing.T) {
	// Test plan:
	// - Feature flags OR-combined in declaration order
	// - Cache and compression entries included only when configured
	// - Classmap merged without overwriting caller entries

	cfg := &config.Config{
		InputFile:         writeWSDL(t, peopleWSDL),
		OneFilePerService: true,
		OptionFeatures:    []string{"SOAP_SINGLE_ELEMENT_ARRAYS", "SOAP_USE_XSI_ARRAY_TYPE"},
		WsdlCache:         "WSDL_CACHE_NONE",
		Compression:       "SOAP_COMPRESSION_ACCEPT | SOAP_COMPRESSION_GZIP",
	}
	out := runGeneration(t, cfg)
	content := readOutput(t, out, "People.php")

	assert.Contains(t, content, "'features' => SOAP_SINGLE_ELEMENT_ARRAYS | SOAP_USE_XSI_ARRAY_TYPE,")
	assert.Contains(t, content, "'cache_wsdl' => WSDL_CACHE_NONE,")
	assert.Contains(t, content, "'compression' => SOAP_COMPRESSION_ACCEPT | SOAP_COMPRESSION_GZIP,")
	assert.Contains(t, content, "if (!isset($options['classmap'][$key]))")
	assert.Contains(t, content, "parent::__construct($wsdl, $options);")
}

func TestGenerate_NoDefaultOptions(t *testing.T) {
	// Test: without configured options there is no array_merge at all
	cfg := &config.Config{
		InputFile:         writeWSDL(t, peopleWSDL),
		OneFilePerService: true,
	}
	out := runGeneration(t, cfg)
	content := readOutput(t, out, "People.php")
	assert.NotContains(t, content, "array_merge")
}

func TestGenerate_NamespaceAndGuard(t *testing.T) {
	cfg := &config.Config{
		InputFile:         writeWSDL(t, peopleWSDL),
		OneFilePerService: true,
		NamespaceName:     "Acme\\People",
		ClassExists:       true,
	}
	out := runGeneration(t, cfg)
	content := readOutput(t, out, "People.php")

	assert.Contains(t, content, "namespace Acme\\People;")
	assert.Contains(t, content, `if (!class_exists("People", false)) {`)
	assert.Contains(t, content, "class People extends \\SoapClient")
}

func TestGenerate_MissingService(t *testing.T) {
	noService := strings.Replace(peopleWSDL, `<service name="People">
    <port name="PeoplePort" binding="tns:PeopleBinding"/>
  </service>`, "", 1)

	cfg := &config.Config{
		InputFile: writeWSDL(t, noService),
		OutputDir: t.TempDir(),
	}
	err := New(cfg).Generate(context.Background())
	assert.ErrorIs(t, err, schema.ErrMissingService)
}

func TestSave_BeforeGenerate(t *testing.T) {
	// Test: saving without a service model is a sequencing bug
	cfg := &config.Config{InputFile: "unused.wsdl", OutputDir: t.TempDir()}
	err := New(cfg).Save()
	assert.ErrorIs(t, err, ErrNoServiceLoaded)
}

func TestSave_OutputDirError(t *testing.T) {
	// Test: an unpreparable output location fails with ErrOutputDir
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg := &config.Config{
		InputFile: writeWSDL(t, peopleWSDL),
		OutputDir: filepath.Join(blocker, "out"),
	}
	err := New(cfg).Generate(context.Background())
	assert.ErrorIs(t, err, ErrOutputDir)
}

func TestGenerate_GrammarErrorAborts(t *testing.T) {
	// An operation referencing a missing input message still produces a
	// parsable signature, so break the signature with an unparsable name.
	broken := strings.Replace(peopleWSDL, `<operation name="getName">`, `<operation name="get Name(">`, 1)

	cfg := &config.Config{
		InputFile: writeWSDL(t, broken),
		OutputDir: t.TempDir(),
	}
	err := New(cfg).Generate(context.Background())
	require.Error(t, err)

	var gerr *schema.GrammarError
	assert.ErrorAs(t, err, &gerr)

	// No partial output for the aborted run.
	entries, readErr := os.ReadDir(cfg.OutputDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
