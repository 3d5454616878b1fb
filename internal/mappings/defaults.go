package mappings

// Default returns the built-in translation tables.
func Default() *Tables {
	return New(defaultFields, defaultFunctions, defaultEvents, defaultTimeLiterals)
}

// defaultFields maps source attribute names to target attribute names.
// Several source names collapse onto one target: the source model
// distinguishes web, total, and plain duration where the target has a
// single response time attribute.
var defaultFields = map[string]string{
	// APM
	"duration":         "response_time",
	"totalTime":        "response_time",
	"webDuration":      "response_time",
	"databaseDuration": "db.response_time",
	"externalDuration": "external.response_time",
	"name":             "service.name",
	"transactionName":  "span.name",
	"appName":          "service.name",
	"appId":            "dt.entity.service",
	"host":             "host.name",
	"hostname":         "host.name",

	// Errors
	"error":         "error",
	"error.class":   "error.type",
	"errorType":     "error.type",
	"error.message": "error.message",
	"errorMessage":  "error.message",

	// HTTP
	"httpResponseCode": "http.status_code",
	"response.status":  "http.status_code",
	"http.statusCode":  "http.status_code",
	"request.uri":      "http.route",
	"request.method":   "http.request.method",
	"http.method":      "http.request.method",
	"http.url":         "http.url",

	// Infrastructure
	"cpuPercent":        "cpu.usage",
	"memoryUsedPercent": "memory.usage",
	"diskUsedPercent":   "disk.usage",
	"cpuSystemPercent":  "cpu.system",
	"cpuUserPercent":    "cpu.user",
	"memoryFreeBytes":   "memory.free",
	"memoryTotalBytes":  "memory.total",

	// Logs
	"message":     "content",
	"log.message": "content",
	"level":       "loglevel",
	"log.level":   "loglevel",
	"severity":    "loglevel",

	// Common
	"timestamp":   "timestamp",
	"entityGuid":  "dt.entity.service",
	"entity.guid": "dt.entity.service",
	"tags":        "tags",
}

// defaultFunctions maps aggregation function names to their target
// equivalents. A target ending in "()" is emitted verbatim with no
// argument. An empty target marks a function with no equivalent at
// all, which converts to a manual-review item.
var defaultFunctions = map[string]string{
	"count":       "count()",
	"sum":         "sum",
	"average":     "avg",
	"avg":         "avg",
	"max":         "max",
	"min":         "min",
	"latest":      "last",
	"earliest":    "first",
	"uniqueCount": "countDistinct",
	"uniques":     "collectDistinct",
	"percentage":  "sum",
	"percentile":  "percentile",
	"median":      "median",
	"stddev":      "stddev",
	"rate":        "rate",
	"filter":      "filter",
	"funnel":      "",
	"histogram":   "",
}

// defaultEvents maps source event types to their target read source.
// Timeseries targets name the metric key the converter fetches.
var defaultEvents = map[string]EventTarget{
	"Transaction":        {Source: SourceTimeseries, MetricKey: "builtin:service.response.time"},
	"TransactionError":   {Source: SourceTimeseries, MetricKey: "builtin:service.errors.total.count"},
	"Span":               {Source: SourceSpans},
	"DistributedTrace":   {Source: SourceSpans},
	"SystemSample":       {Source: SourceTimeseries, MetricKey: "builtin:host.cpu.usage"},
	"ProcessSample":      {Source: SourceTimeseries, MetricKey: "builtin:tech.process.cpu.usage"},
	"NetworkSample":      {Source: SourceTimeseries, MetricKey: "builtin:host.net.bytesTx"},
	"StorageSample":      {Source: SourceTimeseries, MetricKey: "builtin:host.disk.usedPct"},
	"ContainerSample":    {Source: SourceTimeseries, MetricKey: "builtin:containers.cpu.usagePercent"},
	"PageView":           {Source: SourceBizevents},
	"PageAction":         {Source: SourceBizevents},
	"BrowserInteraction": {Source: SourceBizevents},
	"AjaxRequest":        {Source: SourceBizevents},
	"JavaScriptError":    {Source: SourceLogs},
	"Mobile":             {Source: SourceBizevents},
	"MobileSession":      {Source: SourceBizevents},
	"MobileCrash":        {Source: SourceLogs},
	"Log":                {Source: SourceLogs},
	"Custom":             {Source: SourceBizevents},
	"SyntheticCheck":     {Source: SourceTimeseries, MetricKey: "builtin:synthetic.http.duration.geo"},
	"SyntheticRequest":   {Source: SourceTimeseries, MetricKey: "builtin:synthetic.http.duration.geo"},
	"Metric":             {Source: SourceTimeseries},
}

// defaultTimeLiterals maps the relative time phrases seen in real
// dashboards to duration suffixes. Phrases outside this table fall
// back to pattern parsing in the builder.
var defaultTimeLiterals = map[string]string{
	"1 hour ago":   "1h",
	"1 hours ago":  "1h",
	"2 hours ago":  "2h",
	"3 hours ago":  "3h",
	"6 hours ago":  "6h",
	"12 hours ago": "12h",
	"24 hours ago": "24h",
	"1 day ago":    "1d",
	"2 days ago":   "2d",
	"7 days ago":   "7d",
	"1 week ago":   "7d",
	"30 days ago":  "30d",
	"1 month ago":  "30d",
}
