package page

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.ChartJSURL}}"></script>
</head>
<body>
{{- if .Title}}
<h1>{{.Title}}</h1>
{{- end}}
{{- range .Canvases}}
<div class="chart-container"><canvas id="{{.ID}}"></canvas></div>
{{- end}}
{{- if .ScrollButton}}
<button id="{{.ScrollButton}}" type="button" style="display:none">&#8593;</button>
{{- end}}
<script>
Chart.defaults.font.family = {{.Theme.Font.Family}};
Chart.defaults.font.size = {{.Theme.Font.Size}};
Chart.defaults.color = {{.Theme.Color}};

const chartkitCallbacks = {
  integerTicks: function(value) {
    if (Number.isInteger(value)) {
      return value;
    }
  },
  percentTooltip: function(context) {
    let label = context.label || '';
    if (label) {
      label += ': ';
    }
    const total = context.dataset.data.reduce((acc, value) => acc + value, 0);
    const percentage = ((context.raw / total) * 100).toFixed(1) + '%';
    return label + context.raw + ' (' + percentage + ')';
  }
};

function chartkitRevive(cfg) {
  const options = cfg.options || {};
  Object.values(options.scales || {}).forEach(function(scale) {
    if (scale.ticks && typeof scale.ticks.callback === 'string') {
      scale.ticks.callback = chartkitCallbacks[scale.ticks.callback];
    }
  });
  const tooltip = options.plugins && options.plugins.tooltip;
  if (tooltip && tooltip.callbacks && typeof tooltip.callbacks.label === 'string') {
    tooltip.callbacks.label = chartkitCallbacks[tooltip.callbacks.label];
  }
  return cfg;
}
{{range .Canvases}}{{if .Config}}
(function() {
  const ctx = document.getElementById({{.ID}});
  if (ctx) {
    new Chart(ctx, chartkitRevive({{.Config}}));
  }
})();
{{end}}{{end}}
{{.ScrollScript}}
</script>
</body>
</html>
`))
