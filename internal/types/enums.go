package types

type MavenScope string

const (
	MavenScopeCompile MavenScope = "compile"
	MavenScopeRuntime MavenScope = "runtime"
)

type CompileLanguage string

const (
	CompileLanguageJava   CompileLanguage = "java"
	CompileLanguageKotlin CompileLanguage = "kotlin"
)

// Bucket names follow the per-source-set configuration names of a JVM
// project. Derived units carry the same names under their own prefix.
const (
	BucketCompileOnly         = "compileOnly"
	BucketCompileOnlyAPI      = "compileOnlyApi"
	BucketCompileClasspath    = "compileClasspath"
	BucketAnnotationProcessor = "annotationProcessor"
	BucketAPI                 = "api"
	BucketImplementation      = "implementation"
	BucketAPIElements         = "apiElements"
	BucketRuntimeOnly         = "runtimeOnly"
	BucketRuntimeClasspath    = "runtimeClasspath"
	BucketRuntimeElements     = "runtimeElements"
	BucketSourcesElements     = "sourcesElements"
	BucketJavadocElements     = "javadocElements"
)

// StandardBuckets lists every bucket a unit is created with, in the order
// they are forwarded to derived units.
var StandardBuckets = []string{
	BucketCompileOnly,
	BucketCompileOnlyAPI,
	BucketCompileClasspath,
	BucketAnnotationProcessor,
	BucketAPI,
	BucketImplementation,
	BucketAPIElements,
	BucketRuntimeOnly,
	BucketRuntimeClasspath,
	BucketRuntimeElements,
	BucketJavadocElements,
	BucketSourcesElements,
}
